package entity

import "github.com/google/uuid"

// Workspace bundles editor profiles. It always keeps at least one profile,
// and CurrentProfileId always resolves to a member of Profiles.
type Workspace struct {
	Id               uuid.UUID
	Name             string
	Path             string
	CurrentProfileId uuid.UUID
	Profiles         []*WorkspaceProfile
}

type WorkspaceProfile struct {
	Id       uuid.UUID
	Name     string
	Theme    ProfileTheme
	Settings EditorSettings
}

type ProfileTheme struct {
	IsDarkMode      bool    `json:"is_dark_mode"`
	BackgroundColor string  `json:"background_color"`
	SidebarColor    string  `json:"sidebar_color"`
	ButtonColor     string  `json:"button_color"`
	AccentColor     string  `json:"accent_color"`
	FontFamily      string  `json:"font_family"`
	FontSize        int     `json:"font_size"`
	BorderRadius    int     `json:"border_radius"`
	Spacing         int     `json:"spacing"`
	LineHeight      float64 `json:"line_height,omitempty"`
}

type EditorSettings struct {
	DefaultView      string  `json:"default_view"`      // "single" | "split"
	SplitOrientation string  `json:"split_orientation"` // "horizontal" | "vertical"
	SplitRatio       float64 `json:"split_ratio"`
	ShowLineNumbers  bool    `json:"show_line_numbers"`
	AutoSave         bool    `json:"auto_save"`
	SpellCheck       bool    `json:"spell_check"`
	FontSize         int     `json:"font_size"`
	FontFamily       string  `json:"font_family"`
	TabSize          int     `json:"tab_size"`
	UseSoftTabs      bool    `json:"use_soft_tabs"`
	LineHeight       float64 `json:"line_height"`
	ShowInvisibles   bool    `json:"show_invisibles"`
	WordWrap         bool    `json:"word_wrap"`
}

// Profile returns the workspace profile with the given id, or nil.
func (w *Workspace) Profile(id uuid.UUID) *WorkspaceProfile {
	for _, p := range w.Profiles {
		if p.Id == id {
			return p
		}
	}
	return nil
}

// CurrentProfile resolves CurrentProfileId against the profile list.
func (w *Workspace) CurrentProfile() *WorkspaceProfile {
	return w.Profile(w.CurrentProfileId)
}
