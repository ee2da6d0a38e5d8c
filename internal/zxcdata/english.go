package zxcdata

// commonEnglishWords is the ranked frequency list for the "english"
// dictionary, most-common first. A representative sample rather than a
// full wordlist.
var commonEnglishWords = []string{
	"the", "of", "and", "a", "to", "in", "is", "you", "that", "it",
	"he", "was", "for", "on", "are", "as", "with", "his", "they", "i",
	"at", "be", "this", "have", "from", "or", "one", "had", "by", "word",
	"but", "not", "what", "all", "were", "we", "when", "your", "can", "said",
	"there", "use", "an", "each", "which", "she", "do", "how", "their", "if",
	"will", "up", "other", "about", "out", "many", "then", "them", "these", "so",
	"some", "her", "would", "make", "like", "him", "into", "time", "has", "look",
	"two", "more", "write", "go", "see", "number", "no", "way", "could", "people",
	"my", "than", "first", "water", "been", "call", "who", "oil", "its", "now",
	"find", "long", "down", "day", "did", "get", "come", "made", "may", "part",
	"love", "life", "world", "home", "school", "work", "family", "friend", "money", "music",
	"dream", "happy", "smile", "sunshine", "summer", "winter", "spring", "autumn", "ocean", "river",
	"mountain", "forest", "garden", "flower", "animal", "tiger", "eagle", "dragon", "phoenix", "angel",
	"freedom", "justice", "truth", "honor", "courage", "wisdom", "power", "strength", "peace", "hope",
	"computer", "internet", "software", "hardware", "keyboard", "monitor", "battery", "wireless", "network", "system",
	"always", "never", "forever", "together", "whatever", "everything", "nothing", "something", "someone", "everyone",
	"beautiful", "wonderful", "amazing", "fantastic", "incredible", "perfect", "special", "awesome", "brilliant", "excellent",
	"princess", "prince", "knight", "wizard", "warrior", "hunter", "ranger", "soldier", "captain", "general",
	"chocolate", "coffee", "pizza", "burger", "cookie", "sugar", "honey", "butter", "cheese", "bacon",
	"football", "baseball", "basketball", "soccer", "tennis", "hockey", "cricket", "rugby", "golf", "boxing",
}
