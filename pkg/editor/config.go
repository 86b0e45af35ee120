package editor

// Config names the elements the editor drives.
type Config struct {
	SaveButtonID string `env:"EDITOR_SAVE_BUTTON_ID" envDefault:"save-button"`
	StatusID     string `env:"EDITOR_STATUS_ID" envDefault:"save-status"`
	ContentID    string `env:"EDITOR_CONTENT_ID" envDefault:"content"`
}

// DefaultConfig returns the element ids used when no Config is given.
func DefaultConfig() Config {
	return Config{
		SaveButtonID: "save-button",
		StatusID:     "save-status",
		ContentID:    "content",
	}
}
