package model

// View identifies one screen of the main window
type View string

const (
	// ViewHome lists the saved cards
	ViewHome View = "home"

	// ViewCreate is the editor with the live card preview
	ViewCreate View = "create"

	// ViewSettings holds ledger export, erase and preferences
	ViewSettings View = "settings"
)

// Views returns all screens in navigation order
func Views() []View {
	return []View{ViewHome, ViewCreate, ViewSettings}
}

// String returns the string representation of View
func (v View) String() string {
	return string(v)
}

// IsValid returns true for the screens the app can show
func (v View) IsValid() bool {
	return v == ViewHome || v == ViewCreate || v == ViewSettings
}
