package colors

// Kanagawa Wave palette
const (
	sumiInk3     = "#1F1F28"
	sumiInk4     = "#2A2A37"
	sumiInk6     = "#54546D"
	waveBlue1    = "#223249"
	winterBlue   = "#252535"
	winterYellow = "#49443C"
	winterRed    = "#43242B"
	oniViolet    = "#957FB8"
	crystalBlue  = "#7E9CD8"
	springGreen  = "#98BB6C"
	peachRed     = "#FF5D62"
	waveAqua2    = "#7AA89F"
	dragonBlue   = "#658594"
	roninYellow  = "#FF9E3B"
	samuraiRed   = "#E82424"
	fujiGray     = "#727169"
	fujiWhite    = "#DCD7BA"
)

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		Accent: oniViolet,

		Create: springGreen,
		Edit:   crystalBlue,
		Delete: peachRed,

		GroupBorder:    sumiInk6,
		ItemBorder:     sumiInk4,
		SelectedBorder: waveAqua2,
		SelectedBg:     waveBlue1,

		Title:  crystalBlue,
		Subtle: fujiGray,
		Normal: fujiWhite,

		InfoFg:    dragonBlue,
		InfoBg:    winterBlue,
		WarningFg: roninYellow,
		WarningBg: winterYellow,
		ErrorFg:   samuraiRed,
		ErrorBg:   winterRed,

		StatusBarBg:   sumiInk3,
		StatusBarText: fujiWhite,
	}
}
