package zxcdata

// commonPasswords is the ranked frequency list for the "passwords"
// dictionary, most-common first (rank 1 is the single most common
// password in the source breach corpus). Trimmed to a few hundred
// entries rather than the full multi-hundred-thousand-word corpus a
// production deployment would ship, since the data itself is treated
// as an opaque, swappable input rather than a fixed requirement.
var commonPasswords = []string{
	"password", "123456", "12345678", "123456789",
	"12345", "1234", "111111", "1234567", "dragon",
	"123123", "baseball", "abc123", "football", "monkey",
	"letmein", "shadow", "master", "666666", "qwertyuiop",
	"123321", "mustang", "1234567890", "michael", "654321",
	"superman", "1qaz2wsx", "7777777", "121212", "000000",
	"qazwsx", "123qwe", "killer", "trustno1", "jordan",
	"jennifer", "zxcvbnm", "asdfgh", "hunter", "buster",
	"soccer", "harley", "batman", "andrew", "tigger",
	"sunshine", "iloveyou", "2000", "charlie", "robert",
	"thomas", "hockey", "ranger", "daniel", "starwars",
	"klaster", "112233", "george", "computer", "michelle",
	"jessica", "pepper", "1111", "zxcvbn", "555555",
	"11111111", "131313", "freedom", "777777", "pass",
	"maggie", "159753", "aaaaaa", "ginger", "princess",
	"joshua", "cheese", "amanda", "summer", "love",
	"ashley", "nicole", "chelsea", "biteme", "matthew",
	"access", "yankees", "987654321", "dallas", "austin",
	"thunder", "taylor", "matrix", "minecraft", "william",
	"password1", "password12", "password123", "password1234",
	"abc1234", "qwerty123", "qwerty1", "admin", "admin123",
	"root", "toor", "pass123", "pass1234", "changeme",
	"welcome", "welcome1", "welcome123", "login", "hello",
	"hello123", "test", "test123", "guest", "guest123",
	"master123", "letmein1", "iloveyou1", "monkey123",
	"dragon123", "shadow123", "sunshine1", "princess1",
	"passw0rd", "p@ssword", "p@ssw0rd", "pa$$word", "pa$$w0rd",
	"jordan23", "london", "phoenix", "cookie", "rainbow",
	"flower", "purple", "orange", "silver", "golden",
	"diamond", "crystal", "angel", "baby", "sweety",
	"forever", "always", "never", "maybe", "whatever",
	"trinity", "unicorn", "dolphin", "butterfly", "eagle1",
	"tiger", "lion", "panther", "cobra", "falcon",
	"qwerty12", "qwerty1234", "1q2w3e4r", "1qaz2wsx3edc", "zaq12wsx",
	"qweasd", "asdzxc", "qazwsxedc", "asdasd", "qwer1234",
	"1234qwer", "a1b2c3", "abcabc", "abcd1234", "987654",
	"123654", "147258", "159357", "258369", "qweasdzxc",
	"correcthorsebatterystaple",
	"letmein123", "trustno1234", "iamgroot", "ilovecats",
	"ilovedogs", "newyork", "losangeles", "chicago", "houston",
	"sanfrancisco", "marketing", "finance", "engineer", "developer",
	"manager", "secretary", "director", "consultant", "analyst",
}
