package scoring

// Curated marker lists. Russian-first (the training corpus language) with a
// few Latin equivalents. All entries are lowercase stems matched by substring.

var warmMarkers = []string{
	"привет", "здравств", "добрый день", "добрый вечер", "доброе утро",
	"рад", "приятно", "спасибо", "благодар", "понимаю", "отлично",
	"с удовольствием", "hello", "😊", "🥰", "❤",
}

var abruptMarkers = []string{
	"короче", "быстро к делу", "некогда", "слушайте сюда",
}

var pressureMarkers = []string{
	"срочно", "успей", "только сегодня", "только сейчас", "акция", "скидка",
	"последний шанс", "прямо сейчас", "вы должны", "обязательно", "необходимо",
	"немедленно", "поторопитесь",
}

var reflectiveMarkers = []string{
	"понимаю", "слышу", "правильно ли я", "если я верно", "то есть",
	"вы сказали", "как вы говорите", "вы упомянули", "верно?",
}

var greetingMarkers = []string{
	"привет", "здравств", "добрый день", "добрый вечер", "доброе утро", "hello",
}

var closingMarkers = []string{
	"расскажите", "что скажете", "как вам", "напишите", "давайте",
	"жду", "что думаете", "поделитесь",
}

// questionWords open interrogative sentences that skip the question mark
// (common in chat transcriptions).
var questionWords = map[string]bool{
	"кто": true, "что": true, "как": true, "почему": true, "зачем": true,
	"когда": true, "где": true, "куда": true, "какой": true, "какая": true,
	"какие": true, "какое": true, "сколько": true, "кому": true, "чем": true,
	"who": true, "what": true, "how": true, "why": true, "when": true, "where": true,
}

// stopWords are excluded from overlap matching in the listening metric: they
// are too common to indicate an actual reference to the client's words.
var stopWords = map[string]bool{
	"это": true, "что": true, "как": true, "для": true, "вас": true,
	"вам": true, "ваш": true, "наш": true, "мне": true, "меня": true,
	"очень": true, "если": true, "чтобы": true, "будет": true, "есть": true,
	"the": true, "and": true, "you": true, "for": true,
}
