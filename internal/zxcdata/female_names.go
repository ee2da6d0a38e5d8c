package zxcdata

// commonFemaleNames is the ranked frequency list for the "female_names"
// dictionary, most-common first. A representative sample rather than a
// full census given-name list.
var commonFemaleNames = []string{
	"mary", "patricia", "jennifer", "linda", "elizabeth",
	"barbara", "susan", "jessica", "sarah", "karen",
	"lisa", "nancy", "betty", "margaret", "sandra",
	"ashley", "kimberly", "emily", "donna", "michelle",
	"carol", "amanda", "dorothy", "melissa", "deborah",
	"stephanie", "rebecca", "sharon", "laura", "cynthia",
	"kathleen", "amy", "angela", "shirley", "anna",
	"brenda", "pamela", "emma", "nicole", "helen",
	"samantha", "katherine", "christine", "debra", "rachel",
	"carolyn", "janet", "maria", "heather", "diane",
	"julie", "joyce", "victoria", "kelly", "christina",
	"joan", "evelyn", "lauren", "judith", "megan",
	"andrea", "cheryl", "hannah", "jacqueline", "martha",
	"gloria", "teresa", "sara", "janice", "marie",
	"julia", "heidi", "kathryn", "alice", "madison",
	"frances", "jean", "abigail", "judy", "sophia",
	"olivia", "grace", "denise", "amber", "doris",
	"marilyn", "danielle", "beverly", "isabella", "theresa",
	"diana", "natalie", "brittany", "charlotte", "tiffany",
	"florence", "alicia", "jane", "lori", "ava",
}
