package logos

// countryFlags keys flag images by ISO 3166-1 alpha-2 code and by full
// country name. Centered on the francophone countries the source playlists
// cover.
var countryFlags = map[string]string{
	"FR": flagURL("fr"),
	"BE": flagURL("be"),
	"CH": flagURL("ch"),
	"LU": flagURL("lu"),
	"MC": flagURL("mc"),
	"CA": flagURL("ca"),
	"GB": flagURL("gb"),
	"DE": flagURL("de"),
	"ES": flagURL("es"),
	"IT": flagURL("it"),
	"US": flagURL("us"),

	"France":         flagURL("fr"),
	"Belgium":        flagURL("be"),
	"Belgique":       flagURL("be"),
	"Switzerland":    flagURL("ch"),
	"Suisse":         flagURL("ch"),
	"Luxembourg":     flagURL("lu"),
	"Monaco":         flagURL("mc"),
	"Canada":         flagURL("ca"),
	"United Kingdom": flagURL("gb"),
	"Germany":        flagURL("de"),
	"Spain":          flagURL("es"),
	"Italy":          flagURL("it"),
	"United States":  flagURL("us"),
}

func flagURL(code string) string {
	return "https://flagcdn.com/w80/" + code + ".png"
}
