package chat

const (
	LangEnglish = "en"
	LangHindi   = "hi"
	LangPunjabi = "pa"
	DefaultLang = LangEnglish
)

// Messages is the full reply set for one language. Every branch of the
// assistant has a parallel text in each supported language.
type Messages struct {
	Prompt        string
	Help          string
	FoundExternal string
	FoundInternal string
	NothingFound  string
	GenericError  string
}

var catalogs = map[string]Messages{
	LangEnglish: {
		Prompt:        "Please type something, I'm here to help.",
		Help:          `I can help you find jobs. Try typing: "IT jobs in Chandigarh"`,
		FoundExternal: "Here are some jobs from Punjab Rozgar Platform:",
		FoundInternal: "Couldn't find Jobs on Punjab Rozgar Platform, but here are jobs on our portal:",
		NothingFound:  "Sorry, I couldn't find any jobs on Punjab Rozgar Platform or our portal for that search.",
		GenericError:  "Sorry, something went wrong. Please try again in a moment.",
	},
	LangHindi: {
		Prompt:        "कृपया कुछ लिखें, मैं मदद करने के लिए यहाँ हूँ।",
		Help:          `मैं आपकी नौकरी खोज में मदद कर सकता हूँ। लिखकर देखें: "Chandigarh में IT jobs"`,
		FoundExternal: "मैंने Punjab Rozgar Platform पर ये नौकरियां ढूंढी हैं:",
		FoundInternal: "Punjab Rozgar Platform पर आपकी खोज के अनुसार नौकरी नहीं मिली, लेकिन हमारे पोर्टल पर ये नौकरियां उपलब्ध हैं:",
		NothingFound:  "क्षमा करें, Punjab Rozgar Platform और हमारे पोर्टल पर भी कोई नौकरी नहीं मिली।",
		GenericError:  "क्षमा करें, कुछ समस्या आ गई। कृपया थोड़ी देर बाद पुनः प्रयास करें।",
	},
	LangPunjabi: {
		Prompt:        "ਕਿਰਪਾ ਕਰਕੇ ਕੁਝ ਲਿਖੋ, ਮੈਂ ਮਦਦ ਲਈ ਇੱਥੇ ਹਾਂ।",
		Help:          `ਮੈਂ ਤੁਹਾਡੀ ਨੌਕਰੀ ਖੋਜ ਵਿੱਚ ਮਦਦ ਕਰ ਸਕਦਾ ਹਾਂ। ਲਿਖ ਕੇ ਵੇਖੋ: "Chandigarh ਵਿੱਚ IT jobs"`,
		FoundExternal: "ਮੈਂ Punjab Rozgar Platform ’ਤੇ ਇਹ ਨੌਕਰੀਆਂ ਲੱਭੀਆਂ ਹਨ:",
		FoundInternal: "Punjab Rozgar Platform ’ਤੇ ਕੁਝ ਨਹੀਂ ਮਿਲਿਆ, ਪਰ ਸਾਡੇ ਪੋਰਟਲ ’ਤੇ ਇਹ ਨੌਕਰੀਆਂ ਹਨ:",
		NothingFound:  "ਮਾਫ ਕਰਨਾ, Punjab Rozgar Platform ਤੇ ਵੀ ਅਤੇ ਸਾਡੇ ਪੋਰਟਲ ’ਤੇ ਵੀ ਕੋਈ ਨੌਕਰੀ ਨਹੀਂ ਮਿਲੀ।",
		GenericError:  "ਮਾਫ ਕਰਨਾ, ਕੋਈ ਸਮੱਸਿਆ ਆ ਗਈ। ਕੁਝ ਸਮੇਂ ਬਾਅਦ ਦੁਬਾਰਾ ਕੋਸ਼ਿਸ਼ ਕਰੋ।",
	},
}

// MessagesFor returns the catalog for a language code, falling back to
// English for anything unrecognized.
func MessagesFor(lang string) Messages {
	if m, ok := catalogs[lang]; ok {
		return m
	}
	return catalogs[LangEnglish]
}
