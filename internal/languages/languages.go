package languages

import "strings"

// Language is one row of the supported-language table: a human-readable name
// and the code (or codes) the translation endpoint accepts for it. Note
// carries the standard the code comes from when it is not plain ISO-639-1.
type Language struct {
	Name  string
	Codes []string
	Note  string
}

// Supported lists every language the tool accepts, in the order the help
// page presents them. Flattening Codes row by row yields the allow-list used
// for validation, so help text and validation can never drift apart.
var Supported = []Language{
	{Name: "Afrikaans", Codes: []string{"af"}},
	{Name: "Albanian", Codes: []string{"sq"}},
	{Name: "Amharic", Codes: []string{"am"}},
	{Name: "Arabic", Codes: []string{"ar"}},
	{Name: "Armenian", Codes: []string{"hy"}},
	{Name: "Azerbaijani", Codes: []string{"az"}},
	{Name: "Basque", Codes: []string{"eu"}},
	{Name: "Belarusian", Codes: []string{"be"}},
	{Name: "Bengali", Codes: []string{"bn"}},
	{Name: "Bosnian", Codes: []string{"bs"}},
	{Name: "Bulgarian", Codes: []string{"bg"}},
	{Name: "Catalan", Codes: []string{"ca"}},
	{Name: "Cebuano", Codes: []string{"ceb"}, Note: "(ISO-639-2)"},
	{Name: "Chinese (Simplified)", Codes: []string{"zh-CN", "zh"}, Note: "(BCP-47)"},
	{Name: "Chinese (Traditional)", Codes: []string{"zh-TW"}, Note: "(BCP-47)"},
	{Name: "Corsican", Codes: []string{"co"}},
	{Name: "Croatian", Codes: []string{"hr"}},
	{Name: "Czech", Codes: []string{"cs"}},
	{Name: "Danish", Codes: []string{"da"}},
	{Name: "Dutch", Codes: []string{"nl"}},
	{Name: "English", Codes: []string{"en"}},
	{Name: "Esperanto", Codes: []string{"eo"}},
	{Name: "Estonian", Codes: []string{"et"}},
	{Name: "Finnish", Codes: []string{"fi"}},
	{Name: "French", Codes: []string{"fr"}},
	{Name: "Frisian", Codes: []string{"fy"}},
	{Name: "Galician", Codes: []string{"gl"}},
	{Name: "Georgian", Codes: []string{"ka"}},
	{Name: "German", Codes: []string{"de"}},
	{Name: "Greek", Codes: []string{"el"}},
	{Name: "Gujarati", Codes: []string{"gu"}},
	{Name: "Haitian Creole", Codes: []string{"ht"}},
	{Name: "Hausa", Codes: []string{"ha"}},
	{Name: "Hawaiian", Codes: []string{"haw"}, Note: "(ISO-639-2)"},
	{Name: "Hebrew", Codes: []string{"he", "iw"}},
	{Name: "Hindi", Codes: []string{"hi"}},
	{Name: "Hmong", Codes: []string{"hmn"}, Note: "(ISO-639-2)"},
	{Name: "Hungarian", Codes: []string{"hu"}},
	{Name: "Icelandic", Codes: []string{"is"}},
	{Name: "Igbo", Codes: []string{"ig"}},
	{Name: "Indonesian", Codes: []string{"id"}},
	{Name: "Irish", Codes: []string{"ga"}},
	{Name: "Italian", Codes: []string{"it"}},
	{Name: "Japanese", Codes: []string{"ja"}},
	{Name: "Javanese", Codes: []string{"jv"}},
	{Name: "Kannada", Codes: []string{"kn"}},
	{Name: "Kazakh", Codes: []string{"kk"}},
	{Name: "Khmer", Codes: []string{"km"}},
	{Name: "Kinyarwanda", Codes: []string{"rw"}},
	{Name: "Korean", Codes: []string{"ko"}},
	{Name: "Kurdish", Codes: []string{"ku"}},
	{Name: "Kyrgyz", Codes: []string{"ky"}},
	{Name: "Lao", Codes: []string{"lo"}},
	{Name: "Latin", Codes: []string{"la"}},
	{Name: "Latvian", Codes: []string{"lv"}},
	{Name: "Lithuanian", Codes: []string{"lt"}},
	{Name: "Luxembourgish", Codes: []string{"lb"}},
	{Name: "Macedonian", Codes: []string{"mk"}},
	{Name: "Malagasy", Codes: []string{"mg"}},
	{Name: "Malay", Codes: []string{"ms"}},
	{Name: "Malayalam", Codes: []string{"ml"}},
	{Name: "Maltese", Codes: []string{"mt"}},
	{Name: "Maori", Codes: []string{"mi"}},
	{Name: "Marathi", Codes: []string{"mr"}},
	{Name: "Mongolian", Codes: []string{"mn"}},
	{Name: "Myanmar (Burmese)", Codes: []string{"my"}},
	{Name: "Nepali", Codes: []string{"ne"}},
	{Name: "Norwegian", Codes: []string{"no"}},
	{Name: "Nyanja (Chichewa)", Codes: []string{"ny"}},
	{Name: "Odia (Oriya)", Codes: []string{"or"}},
	{Name: "Pashto", Codes: []string{"ps"}},
	{Name: "Persian", Codes: []string{"fa"}},
	{Name: "Polish", Codes: []string{"pl"}},
	{Name: "Portuguese (Portugal, Brazil)", Codes: []string{"pt"}},
	{Name: "Punjabi", Codes: []string{"pa"}},
	{Name: "Romanian", Codes: []string{"ro"}},
	{Name: "Russian", Codes: []string{"ru"}},
	{Name: "Samoan", Codes: []string{"sm"}},
	{Name: "Scots Gaelic", Codes: []string{"gd"}},
	{Name: "Serbian", Codes: []string{"sr"}},
	{Name: "Sesotho", Codes: []string{"st"}},
	{Name: "Shona", Codes: []string{"sn"}},
	{Name: "Sindhi", Codes: []string{"sd"}},
	{Name: "Sinhala (Sinhalese)", Codes: []string{"si"}},
	{Name: "Slovak", Codes: []string{"sk"}},
	{Name: "Slovenian", Codes: []string{"sl"}},
	{Name: "Somali", Codes: []string{"so"}},
	{Name: "Spanish", Codes: []string{"es"}},
	{Name: "Sundanese", Codes: []string{"su"}},
	{Name: "Swahili", Codes: []string{"sw"}},
	{Name: "Swedish", Codes: []string{"sv"}},
	{Name: "Tagalog (Filipino)", Codes: []string{"tl"}},
	{Name: "Tajik", Codes: []string{"tg"}},
	{Name: "Tamil", Codes: []string{"ta"}},
	{Name: "Tatar", Codes: []string{"tt"}},
	{Name: "Telugu", Codes: []string{"te"}},
	{Name: "Thai", Codes: []string{"th"}},
	{Name: "Turkish", Codes: []string{"tr"}},
	{Name: "Turkmen", Codes: []string{"tk"}},
	{Name: "Ukrainian", Codes: []string{"uk"}},
	{Name: "Urdu", Codes: []string{"ur"}},
	{Name: "Uyghur", Codes: []string{"ug"}},
	{Name: "Uzbek", Codes: []string{"uz"}},
	{Name: "Vietnamese", Codes: []string{"vi"}},
	{Name: "Welsh", Codes: []string{"cy"}},
	{Name: "Xhosa", Codes: []string{"xh"}},
	{Name: "Yiddish", Codes: []string{"yi"}},
	{Name: "Yoruba", Codes: []string{"yo"}},
	{Name: "Zulu", Codes: []string{"zu"}},
}

var codeSet = make(map[string]struct{})

func init() {
	for _, lang := range Supported {
		for _, code := range lang.Codes {
			codeSet[code] = struct{}{}
		}
	}
}

// IsAllowed reports whether code is one of the supported language codes.
// Matching is case-sensitive: the endpoint expects codes exactly as listed.
func IsAllowed(code string) bool {
	_, ok := codeSet[code]
	return ok
}

// Codes returns every supported code in help-page order.
func Codes() []string {
	codes := make([]string, 0, len(codeSet))
	for _, lang := range Supported {
		codes = append(codes, lang.Codes...)
	}
	return codes
}

// Listing renders the language table shown on the help page, one
// "Name - code" line per language.
func Listing() string {
	var sb strings.Builder
	for i, lang := range Supported {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(lang.Name)
		sb.WriteString(" - ")
		sb.WriteString(strings.Join(lang.Codes, " or "))
		if lang.Note != "" {
			sb.WriteByte(' ')
			sb.WriteString(lang.Note)
		}
	}
	return sb.String()
}
