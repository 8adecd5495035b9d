package validation

// Supported message locales.
const (
	LocaleEnglish  = "en"
	LocaleJapanese = "ja"
)

// Per-file messages are appended to the file name, so they start with the
// separator.
var englishMessages = map[Kind]string{
	UnknownError:       "An unexpected error occurred",
	FileNotFound:       "Branch definition file does not exist",
	InvalidFormat:      "Branch definition file has an invalid format",
	NonSequentialFiles: "Sales file names are not sequential",
	PerFileFormat:      " has an invalid format",
	InvalidBranchCode:  " has an invalid branch code",
	AmountOverflow:     "Total amount exceeded 10 digits",
}

var japaneseMessages = map[Kind]string{
	UnknownError:       "予期せぬエラーが発生しました",
	FileNotFound:       "支店定義ファイルが存在しません",
	InvalidFormat:      "支店定義ファイルのフォーマットが不正です",
	NonSequentialFiles: "売上ファイル名が連番になっていません",
	PerFileFormat:      "のフォーマットが不正です",
	InvalidBranchCode:  "の支店コードが不正です",
	AmountOverflow:     "合計金額が10桁を超えました",
}

// IsSupportedLocale reports whether locale has a message catalog.
func IsSupportedLocale(locale string) bool {
	return locale == LocaleEnglish || locale == LocaleJapanese
}

// catalogFor falls back to English for unknown locales.
func catalogFor(locale string) map[Kind]string {
	if locale == LocaleJapanese {
		return japaneseMessages
	}
	return englishMessages
}
