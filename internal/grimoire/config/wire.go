package config

// wireConfig mirrors the on-disk JSON schema (spec.md §6) before it is
// normalized into the immutable Config snapshot.
type wireConfig struct {
	Schema       string             `json:"$schema"`
	Variables    map[string]string  `json:"variables"`
	Scrolls      []wireScroll       `json:"scrolls"`
	Projects     []wireProject      `json:"projects"`
	Shared       []wireShared       `json:"shared"`
	Critical     []wireCritical     `json:"critical"`
	Lock         *bool              `json:"lock"`
	Browserslist []string           `json:"browserslist"`
}

type wireScroll struct {
	Name        string              `json:"name"`
	Spells      []string            `json:"spells"`
	Extends     []string            `json:"extends"`
	SpellByArgs map[string][]string `json:"spellByArgs"`
}

type wireProject struct {
	ProjectName          string   `json:"projectName"`
	InputPaths           []string `json:"inputPaths"`
	OutputDirPath        string   `json:"outputDirPath"`
	SingleOutputFileName string   `json:"singleOutputFileName"`
}

type wireCSSCustomProperty struct {
	Element      string            `json:"element"`
	DataParam    string            `json:"dataParam"`
	DataValue    string            `json:"dataValue"`
	CSSVariables map[string]string `json:"cssVariables"`
}

type wireShared struct {
	OutputPath          string                  `json:"outputPath"`
	Styles              []string                `json:"styles"`
	CSSCustomProperties []wireCSSCustomProperty `json:"cssCustomProperties"`
}

type wireCritical struct {
	FileToInlinePaths   []string                `json:"fileToInlinePaths"`
	Styles              []string                `json:"styles"`
	CSSCustomProperties []wireCSSCustomProperty `json:"cssCustomProperties"`
}

// wireFragment is the schema shared by grimoire.*.scrolls.json and
// grimoire.*.variables.json fragments (spec.md §4.1): each fragment only
// ever populates the field matching its filename suffix, but both fields
// are accepted so a fragment file can carry either or both.
type wireFragment struct {
	Scrolls   []wireScroll      `json:"scrolls"`
	Variables map[string]string `json:"variables"`
}
