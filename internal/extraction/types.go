package extraction

import "voice-to-jira/internal/model"

// ExtractInput is the input for task extraction.
type ExtractInput struct {
	Transcript string // free-form natural-language text, possibly mixed ru/en
}

// GeneratorMeta describes which generator endpoint and model served a
// request.
type GeneratorMeta struct {
	Mode  string `json:"mode"`
	URL   string `json:"url"`
	Model string `json:"model"`
}

// ExtractOutput is the result of task extraction.
type ExtractOutput struct {
	Tasks []model.Task
	Meta  GeneratorMeta
}
