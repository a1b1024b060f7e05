package referral

// DefaultTargets holds the Stack Exchange sites rewritten to referral links.
// Hostnames are unique.
var DefaultTargets = Table{
	{Hostname: "academia.stackexchange.com", Identifier: "7658"},
	{Hostname: "anime.stackexchange.com", Identifier: "7674"},
	{Hostname: "apple.stackexchange.com", Identifier: "14295"},
	{Hostname: "area51.stackexchange.com", Identifier: "47881"},
	{Hostname: "askubuntu.com", Identifier: "265738"},
	{Hostname: "aviation.stackexchange.com", Identifier: "1372"},
	{Hostname: "bicycles.stackexchange.com", Identifier: "17362"},
	{Hostname: "biology.stackexchange.com", Identifier: "16115"},
	{Hostname: "bricks.stackexchange.com", Identifier: "445"},
	{Hostname: "chemistry.stackexchange.com", Identifier: "5443"},
	{Hostname: "chess.stackexchange.com", Identifier: "2564"},
	{Hostname: "christianity.stackexchange.com", Identifier: "10196"},
	{Hostname: "codegolf.stackexchange.com", Identifier: "13285"},
	{Hostname: "codereview.stackexchange.com", Identifier: "36525"},
	{Hostname: "cogsci.stackexchange.com", Identifier: "7973"},
	{Hostname: "communitybuilding.stackexchange.com", Identifier: "372"},
	{Hostname: "cooking.stackexchange.com", Identifier: "25134"},
	{Hostname: "crypto.stackexchange.com", Identifier: "1185"},
	{Hostname: "diy.stackexchange.com", Identifier: "25263"},
	{Hostname: "dsp.stackexchange.com", Identifier: "8360"},
	{Hostname: "earthscience.stackexchange.com", Identifier: "352"},
	{Hostname: "elementaryos.stackexchange.com", Identifier: "3586"},
	{Hostname: "english.stackexchange.com", Identifier: "22597"},
	{Hostname: "gaming.stackexchange.com", Identifier: "73524"},
	{Hostname: "gardening.stackexchange.com", Identifier: "813"},
	{Hostname: "gis.stackexchange.com", Identifier: "26054"},
	{Hostname: "graphicdesign.stackexchange.com", Identifier: "19347"},
	{Hostname: "law.stackexchange.com", Identifier: "2488"},
	{Hostname: "lifehacks.stackexchange.com", Identifier: "11245"},
	{Hostname: "linguistics.stackexchange.com", Identifier: "2722"},
	{Hostname: "math.stackexchange.com", Identifier: "24160"},
	{Hostname: "matheducators.stackexchange.com", Identifier: "661"},
	{Hostname: "mathematica.stackexchange.com", Identifier: "5190"},
	{Hostname: "mathoverflow.net", Identifier: "38734"},
	{Hostname: "mechanics.stackexchange.com", Identifier: "14629"},
	{Hostname: "meta.stackexchange.com", Identifier: "226928"},
	{Hostname: "money.stackexchange.com", Identifier: "13518"},
	{Hostname: "movies.stackexchange.com", Identifier: "9285"},
	{Hostname: "networkengineering.stackexchange.com", Identifier: "16668"},
	{Hostname: "opensource.stackexchange.com", Identifier: "2909"},
	{Hostname: "parenting.stackexchange.com", Identifier: "14304"},
	{Hostname: "patents.stackexchange.com", Identifier: "3882"},
	{Hostname: "philosophy.stackexchange.com", Identifier: "16838"},
	{Hostname: "photo.stackexchange.com", Identifier: "29700"},
	{Hostname: "physics.stackexchange.com", Identifier: "38614"},
	{Hostname: "politics.stackexchange.com", Identifier: "5590"},
	{Hostname: "productivity.stackexchange.com", Identifier: "1990"},
	{Hostname: "puzzling.stackexchange.com", Identifier: "4692"},
	{Hostname: "rpg.stackexchange.com", Identifier: "22823"},
	{Hostname: "salesforce.stackexchange.com", Identifier: "36215"},
	{Hostname: "scifi.stackexchange.com", Identifier: "3567"},
	{Hostname: "security.stackexchange.com", Identifier: "9814"},
	{Hostname: "serverfault.com", Identifier: "206273"},
	{Hostname: "skeptics.stackexchange.com", Identifier: "5416"},
	{Hostname: "softwareengineering.stackexchange.com", Identifier: "94977"},
	{Hostname: "space.stackexchange.com", Identifier: "1003"},
	{Hostname: "sqa.stackexchange.com", Identifier: "7301"},
	{Hostname: "stackapps.com", Identifier: "21515"},
	{Hostname: "stackoverflow.com", Identifier: "1558022"},
	{Hostname: "stats.stackexchange.com", Identifier: "32450"},
	{Hostname: "superuser.com", Identifier: "243137"},
	{Hostname: "tex.stackexchange.com", Identifier: "9668"},
	{Hostname: "travel.stackexchange.com", Identifier: "12415"},
	{Hostname: "unix.stackexchange.com", Identifier: "43183"},
	{Hostname: "ux.stackexchange.com", Identifier: "9976"},
	{Hostname: "webapps.stackexchange.com", Identifier: "45296"},
	{Hostname: "webmasters.stackexchange.com", Identifier: "35749"},
	{Hostname: "workplace.stackexchange.com", Identifier: "14106"},
	{Hostname: "worldbuilding.stackexchange.com", Identifier: "2575"},
	{Hostname: "writers.stackexchange.com", Identifier: "11018"},
}
