package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "byte" or "offset").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "invalid_lead_byte":
			return "不正な先頭バイトです"
		case "unexpected_continuation_byte":
			return "予期しない継続バイトです"
		case "incomplete_sequence":
			return "シーケンスが不完全です"
		case "overlong_encoding":
			return "冗長なエンコードです"
		case "encoded_surrogate":
			return "サロゲートがエンコードされています"
		case "code_point_out_of_range":
			return "コードポイントが範囲外です"
		case "truncated_stream":
			return "ストリームがシーケンスの途中で打ち切られました"
		}
	default: // "en"
		switch code {
		case "invalid_lead_byte":
			return "invalid lead byte"
		case "unexpected_continuation_byte":
			return "unexpected continuation byte"
		case "incomplete_sequence":
			return "incomplete sequence"
		case "overlong_encoding":
			return "overlong encoding"
		case "encoded_surrogate":
			return "encoded surrogate"
		case "code_point_out_of_range":
			return "code point out of range"
		case "truncated_stream":
			return "stream truncated mid-sequence"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
