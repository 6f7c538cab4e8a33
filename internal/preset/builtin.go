package preset

import "github.com/ytget/muse/internal/model"

// DefaultID is the preset used when a saved card references an unknown id
const DefaultID = "letter-dark"

var builtin = []model.Preset{
	{
		ID:          "letter-dark",
		Name:        "Letter (Dark)",
		Slug:        "letter-dark",
		Description: "A minimalist dark scriptorium. White ink on a midnight void.",
		Language:    "Universal",
		Background:  "#000000",
		Text:        "#FFFFFF",
		Accent:      "#FFFFFF",
		Font:        model.FontSerif,
	},
	{
		ID:          "write-up",
		Name:        "Writeup",
		Slug:        "write-up",
		Description: "The standard of clarity. Black ink on a pure white field.",
		Language:    "Universal",
		Background:  "#FFFFFF",
		Text:        "#000000",
		Accent:      "#000000",
		Font:        model.FontSerif,
	},
	{
		ID:          "old-english",
		Name:        "Old English",
		Slug:        "old-english",
		Description: "Early compositions exploring form and structure.",
		Language:    "English",
		Background:  "#FFF1F2",
		Text:        "#881337",
		Accent:      "#E11D48",
		Font:        model.FontSerif,
	},
	{
		ID:          "old-urdu",
		Name:        "Old Urdu",
		Slug:        "old-urdu",
		Description: "The beginnings of expression in the mother tongue.",
		Language:    "Urdu",
		Background:  "#FDF2F8",
		Text:        "#831843",
		Accent:      "#DB2777",
		Font:        model.FontUrdu,
	},
	{
		ID:          "greek",
		Name:        "Greek",
		Slug:        "greek",
		Description: "Philosophical explorations inspired by Hellenistic thought and myth.",
		Language:    "English",
		Background:  "#F0F9FF",
		Text:        "#1A365D",
		Accent:      "#3182CE",
		Font:        model.FontSerif,
	},
	{
		ID:          "latin",
		Name:        "Latin",
		Slug:        "latin",
		Description: "Classical themes of Roman virtue, stoicism, and time.",
		Language:    "English",
		Background:  "#FFFBEB",
		Text:        "#744210",
		Accent:      "#D69E2E",
		Font:        model.FontSerif,
	},
	{
		ID:          "general-english",
		Name:        "General English",
		Slug:        "general-english",
		Description: "A collection of general English poems and songs.",
		Language:    "English",
		Background:  "#FAFAFA",
		Text:        "#52525B",
		Accent:      "#52525B",
		Font:        model.FontSerif,
	},
	{
		ID:          "general-urdu",
		Name:        "General Urdu",
		Slug:        "general-urdu",
		Description: "A collection of general Urdu poems and songs.",
		Language:    "Urdu",
		Background:  "#F5F5F5",
		Text:        "#1F2937",
		Accent:      "#4B5563",
		Font:        model.FontUrdu,
	},
	{
		ID:          "theological-era",
		Name:        "Theological Era",
		Slug:        "theological-era",
		Description: "Poems from the era of theological crisis and exploration.",
		Language:    "English",
		Background:  "#EEF2FF",
		Text:        "#312E81",
		Accent:      "#4F46E5",
		Font:        model.FontSerif,
	},
	{
		ID:          "new-english",
		Name:        "New English",
		Slug:        "new-english",
		Description: "Recent English compositions.",
		Language:    "English",
		Background:  "#FAF5FF",
		Text:        "#581C87",
		Accent:      "#9333EA",
		Font:        model.FontSerif,
	},
	{
		ID:          "nazm-e-adil-vol-1",
		Name:        "Nazm-e-Adil Vol 1",
		Slug:        "nazm-e-adil-vol-1",
		Description: "The first volume of collected Nazms. The Crisis Arc.",
		Language:    "Urdu",
		Background:  "#FFF7ED",
		Text:        "#7F1D1D",
		Accent:      "#EA580C",
		Font:        model.FontUrdu,
	},
	{
		ID:          "nazm-e-adil-vol-2",
		Name:        "Nazm-e-Adil Vol 2",
		Slug:        "nazm-e-adil-vol-2",
		Description: "Journal entries of subsistence and philosophical calm.",
		Language:    "Urdu",
		Background:  "#ECFDF5",
		Text:        "#064E3B",
		Accent:      "#059669",
		Font:        model.FontUrdu,
	},
	{
		ID:          "naghma-haye-hoor",
		Name:        "Naghma-haye-Hoor",
		Slug:        "naghma-haye-hoor",
		Description: "Songs of the Beloved. A dedicated collection for the muse.",
		Language:    "Urdu",
		Background:  "#FCE7F3",
		Text:        "#9D174D",
		Accent:      "#DB2777",
		Font:        model.FontUrdu,
		Hidden:      true,
	},
	{
		ID:          "merihond",
		Name:        "Merihond",
		Slug:        "merihond",
		Description: "Verses from the distant star. A collection discovered beyond the cosmos.",
		Language:    "Punjabi",
		Background:  "#E0F2FE",
		Text:        "#075985",
		Accent:      "#0EA5E9",
		Font:        model.FontSerif,
		Hidden:      true,
	},
}
