package color

// namedColors is the CSS Color Module Level 4 named-color table.
var namedColors = map[string]RGBA{
	"aliceblue": {R: 240, G: 248, B: 255, A: 1.0},
	"antiquewhite": {R: 250, G: 235, B: 215, A: 1.0},
	"aqua": {R: 0, G: 255, B: 255, A: 1.0},
	"aquamarine": {R: 127, G: 255, B: 212, A: 1.0},
	"azure": {R: 240, G: 255, B: 255, A: 1.0},
	"beige": {R: 245, G: 245, B: 220, A: 1.0},
	"bisque": {R: 255, G: 228, B: 196, A: 1.0},
	"black": {R: 0, G: 0, B: 0, A: 1.0},
	"blanchedalmond": {R: 255, G: 235, B: 205, A: 1.0},
	"blue": {R: 0, G: 0, B: 255, A: 1.0},
	"blueviolet": {R: 138, G: 43, B: 226, A: 1.0},
	"brown": {R: 165, G: 42, B: 42, A: 1.0},
	"burlywood": {R: 222, G: 184, B: 135, A: 1.0},
	"cadetblue": {R: 95, G: 158, B: 160, A: 1.0},
	"chartreuse": {R: 127, G: 255, B: 0, A: 1.0},
	"chocolate": {R: 210, G: 105, B: 30, A: 1.0},
	"coral": {R: 255, G: 127, B: 80, A: 1.0},
	"cornflowerblue": {R: 100, G: 149, B: 237, A: 1.0},
	"cornsilk": {R: 255, G: 248, B: 220, A: 1.0},
	"crimson": {R: 220, G: 20, B: 60, A: 1.0},
	"cyan": {R: 0, G: 255, B: 255, A: 1.0},
	"darkblue": {R: 0, G: 0, B: 139, A: 1.0},
	"darkcyan": {R: 0, G: 139, B: 139, A: 1.0},
	"darkgoldenrod": {R: 184, G: 134, B: 11, A: 1.0},
	"darkgray": {R: 169, G: 169, B: 169, A: 1.0},
	"darkgreen": {R: 0, G: 100, B: 0, A: 1.0},
	"darkgrey": {R: 169, G: 169, B: 169, A: 1.0},
	"darkkhaki": {R: 189, G: 183, B: 107, A: 1.0},
	"darkmagenta": {R: 139, G: 0, B: 139, A: 1.0},
	"darkolivegreen": {R: 85, G: 107, B: 47, A: 1.0},
	"darkorange": {R: 255, G: 140, B: 0, A: 1.0},
	"darkorchid": {R: 153, G: 50, B: 204, A: 1.0},
	"darkred": {R: 139, G: 0, B: 0, A: 1.0},
	"darksalmon": {R: 233, G: 150, B: 122, A: 1.0},
	"darkseagreen": {R: 143, G: 188, B: 143, A: 1.0},
	"darkslateblue": {R: 72, G: 61, B: 139, A: 1.0},
	"darkslategray": {R: 47, G: 79, B: 79, A: 1.0},
	"darkslategrey": {R: 47, G: 79, B: 79, A: 1.0},
	"darkturquoise": {R: 0, G: 206, B: 209, A: 1.0},
	"darkviolet": {R: 148, G: 0, B: 211, A: 1.0},
	"deeppink": {R: 255, G: 20, B: 147, A: 1.0},
	"deepskyblue": {R: 0, G: 191, B: 255, A: 1.0},
	"dimgray": {R: 105, G: 105, B: 105, A: 1.0},
	"dimgrey": {R: 105, G: 105, B: 105, A: 1.0},
	"dodgerblue": {R: 30, G: 144, B: 255, A: 1.0},
	"firebrick": {R: 178, G: 34, B: 34, A: 1.0},
	"floralwhite": {R: 255, G: 250, B: 240, A: 1.0},
	"forestgreen": {R: 34, G: 139, B: 34, A: 1.0},
	"fuchsia": {R: 255, G: 0, B: 255, A: 1.0},
	"gainsboro": {R: 220, G: 220, B: 220, A: 1.0},
	"ghostwhite": {R: 248, G: 248, B: 255, A: 1.0},
	"gold": {R: 255, G: 215, B: 0, A: 1.0},
	"goldenrod": {R: 218, G: 165, B: 32, A: 1.0},
	"gray": {R: 128, G: 128, B: 128, A: 1.0},
	"green": {R: 0, G: 128, B: 0, A: 1.0},
	"greenyellow": {R: 173, G: 255, B: 47, A: 1.0},
	"grey": {R: 128, G: 128, B: 128, A: 1.0},
	"honeydew": {R: 240, G: 255, B: 240, A: 1.0},
	"hotpink": {R: 255, G: 105, B: 180, A: 1.0},
	"indianred": {R: 205, G: 92, B: 92, A: 1.0},
	"indigo": {R: 75, G: 0, B: 130, A: 1.0},
	"ivory": {R: 255, G: 255, B: 240, A: 1.0},
	"khaki": {R: 240, G: 230, B: 140, A: 1.0},
	"lavender": {R: 230, G: 230, B: 250, A: 1.0},
	"lavenderblush": {R: 255, G: 240, B: 245, A: 1.0},
	"lawngreen": {R: 124, G: 252, B: 0, A: 1.0},
	"lemonchiffon": {R: 255, G: 250, B: 205, A: 1.0},
	"lightblue": {R: 173, G: 216, B: 230, A: 1.0},
	"lightcoral": {R: 240, G: 128, B: 128, A: 1.0},
	"lightcyan": {R: 224, G: 255, B: 255, A: 1.0},
	"lightgoldenrodyellow": {R: 250, G: 250, B: 210, A: 1.0},
	"lightgray": {R: 211, G: 211, B: 211, A: 1.0},
	"lightgreen": {R: 144, G: 238, B: 144, A: 1.0},
	"lightgrey": {R: 211, G: 211, B: 211, A: 1.0},
	"lightpink": {R: 255, G: 182, B: 193, A: 1.0},
	"lightsalmon": {R: 255, G: 160, B: 122, A: 1.0},
	"lightseagreen": {R: 32, G: 178, B: 170, A: 1.0},
	"lightskyblue": {R: 135, G: 206, B: 250, A: 1.0},
	"lightslategray": {R: 119, G: 136, B: 153, A: 1.0},
	"lightslategrey": {R: 119, G: 136, B: 153, A: 1.0},
	"lightsteelblue": {R: 176, G: 196, B: 222, A: 1.0},
	"lightyellow": {R: 255, G: 255, B: 224, A: 1.0},
	"lime": {R: 0, G: 255, B: 0, A: 1.0},
	"limegreen": {R: 50, G: 205, B: 50, A: 1.0},
	"linen": {R: 250, G: 240, B: 230, A: 1.0},
	"magenta": {R: 255, G: 0, B: 255, A: 1.0},
	"maroon": {R: 128, G: 0, B: 0, A: 1.0},
	"mediumaquamarine": {R: 102, G: 205, B: 170, A: 1.0},
	"mediumblue": {R: 0, G: 0, B: 205, A: 1.0},
	"mediumorchid": {R: 186, G: 85, B: 211, A: 1.0},
	"mediumpurple": {R: 147, G: 112, B: 219, A: 1.0},
	"mediumseagreen": {R: 60, G: 179, B: 113, A: 1.0},
	"mediumslateblue": {R: 123, G: 104, B: 238, A: 1.0},
	"mediumspringgreen": {R: 0, G: 250, B: 154, A: 1.0},
	"mediumturquoise": {R: 72, G: 209, B: 204, A: 1.0},
	"mediumvioletred": {R: 199, G: 21, B: 133, A: 1.0},
	"midnightblue": {R: 25, G: 25, B: 112, A: 1.0},
	"mintcream": {R: 245, G: 255, B: 250, A: 1.0},
	"mistyrose": {R: 255, G: 228, B: 225, A: 1.0},
	"moccasin": {R: 255, G: 228, B: 181, A: 1.0},
	"navajowhite": {R: 255, G: 222, B: 173, A: 1.0},
	"navy": {R: 0, G: 0, B: 128, A: 1.0},
	"oldlace": {R: 253, G: 245, B: 230, A: 1.0},
	"olive": {R: 128, G: 128, B: 0, A: 1.0},
	"olivedrab": {R: 107, G: 142, B: 35, A: 1.0},
	"orange": {R: 255, G: 165, B: 0, A: 1.0},
	"orangered": {R: 255, G: 69, B: 0, A: 1.0},
	"orchid": {R: 218, G: 112, B: 214, A: 1.0},
	"palegoldenrod": {R: 238, G: 232, B: 170, A: 1.0},
	"palegreen": {R: 152, G: 251, B: 152, A: 1.0},
	"paleturquoise": {R: 175, G: 238, B: 238, A: 1.0},
	"palevioletred": {R: 219, G: 112, B: 147, A: 1.0},
	"papayawhip": {R: 255, G: 239, B: 213, A: 1.0},
	"peachpuff": {R: 255, G: 218, B: 185, A: 1.0},
	"peru": {R: 205, G: 133, B: 63, A: 1.0},
	"pink": {R: 255, G: 192, B: 203, A: 1.0},
	"plum": {R: 221, G: 160, B: 221, A: 1.0},
	"powderblue": {R: 176, G: 224, B: 230, A: 1.0},
	"purple": {R: 128, G: 0, B: 128, A: 1.0},
	"rebeccapurple": {R: 102, G: 51, B: 153, A: 1.0},
	"red": {R: 255, G: 0, B: 0, A: 1.0},
	"rosybrown": {R: 188, G: 143, B: 143, A: 1.0},
	"royalblue": {R: 65, G: 105, B: 225, A: 1.0},
	"saddlebrown": {R: 139, G: 69, B: 19, A: 1.0},
	"salmon": {R: 250, G: 128, B: 114, A: 1.0},
	"sandybrown": {R: 244, G: 164, B: 96, A: 1.0},
	"seagreen": {R: 46, G: 139, B: 87, A: 1.0},
	"seashell": {R: 255, G: 245, B: 238, A: 1.0},
	"sienna": {R: 160, G: 82, B: 45, A: 1.0},
	"silver": {R: 192, G: 192, B: 192, A: 1.0},
	"skyblue": {R: 135, G: 206, B: 235, A: 1.0},
	"slateblue": {R: 106, G: 90, B: 205, A: 1.0},
	"slategray": {R: 112, G: 128, B: 144, A: 1.0},
	"slategrey": {R: 112, G: 128, B: 144, A: 1.0},
	"snow": {R: 255, G: 250, B: 250, A: 1.0},
	"springgreen": {R: 0, G: 255, B: 127, A: 1.0},
	"steelblue": {R: 70, G: 130, B: 180, A: 1.0},
	"tan": {R: 210, G: 180, B: 140, A: 1.0},
	"teal": {R: 0, G: 128, B: 128, A: 1.0},
	"thistle": {R: 216, G: 191, B: 216, A: 1.0},
	"tomato": {R: 255, G: 99, B: 71, A: 1.0},
	"turquoise": {R: 64, G: 224, B: 208, A: 1.0},
	"violet": {R: 238, G: 130, B: 238, A: 1.0},
	"wheat": {R: 245, G: 222, B: 179, A: 1.0},
	"white": {R: 255, G: 255, B: 255, A: 1.0},
	"whitesmoke": {R: 245, G: 245, B: 245, A: 1.0},
	"yellow": {R: 255, G: 255, B: 0, A: 1.0},
	"yellowgreen": {R: 154, G: 205, B: 50, A: 1.0},
	"transparent": {R: 0, G: 0, B: 0, A: 0.0},
}
