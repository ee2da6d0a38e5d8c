package zxcdata

// commonMaleNames is the ranked frequency list for the "male_names"
// dictionary, most-common first. A representative sample rather than a
// full census given-name list.
var commonMaleNames = []string{
	"james", "robert", "john", "michael", "david",
	"william", "richard", "joseph", "thomas", "charles",
	"christopher", "daniel", "matthew", "anthony", "mark",
	"donald", "steven", "andrew", "paul", "joshua",
	"kenneth", "kevin", "brian", "george", "edward",
	"ronald", "timothy", "jason", "jeffrey", "ryan",
	"jacob", "gary", "nicholas", "eric", "jonathan",
	"stephen", "larry", "justin", "scott", "brandon",
	"benjamin", "samuel", "gregory", "alexander", "patrick",
	"frank", "raymond", "jack", "dennis", "jerry",
	"tyler", "aaron", "jose", "adam", "nathan",
	"henry", "zachary", "douglas", "peter", "kyle",
	"noah", "ethan", "jeremy", "walter", "christian",
	"keith", "roger", "terry", "austin", "sean",
	"gerald", "carl", "harold", "dylan", "arthur",
	"lawrence", "jordan", "jesse", "bryan", "billy",
	"bruce", "gabriel", "joe", "logan", "alan",
	"juan", "albert", "wayne", "elijah", "willie",
	"randy", "howard", "eugene", "russell", "bobby",
	"victor", "louis", "philip", "johnny", "mason",
}
