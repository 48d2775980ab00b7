package canon

import "scriptureref/internal/domain"

const (
	ot = domain.OldTestament
	nt = domain.NewTestament
)

// Chapter counts follow the KJV versification. Abbreviations are lower-cased;
// each maps to exactly one book.
var books = []Book{
	{1, "Genesis", "Gen", ot, 50, []string{"gen", "ge", "gn"}},
	{2, "Exodus", "Exo", ot, 40, []string{"ex", "exo", "exod"}},
	{3, "Leviticus", "Lev", ot, 27, []string{"lev", "le", "lv"}},
	{4, "Numbers", "Num", ot, 36, []string{"num", "nu", "nm", "nb"}},
	{5, "Deuteronomy", "Deu", ot, 34, []string{"deut", "deu", "dt"}},
	{6, "Joshua", "Jos", ot, 24, []string{"josh", "jos", "jsh"}},
	{7, "Judges", "Jdg", ot, 21, []string{"judg", "jdg", "jdgs"}},
	{8, "Ruth", "Rut", ot, 4, []string{"rut", "ru", "rth"}},
	{9, "1 Samuel", "1Sa", ot, 31, []string{"1 sam", "1sam", "1sa", "1 sm"}},
	{10, "2 Samuel", "2Sa", ot, 24, []string{"2 sam", "2sam", "2sa", "2 sm"}},
	{11, "1 Kings", "1Ki", ot, 22, []string{"1 kgs", "1kgs", "1ki", "1 ki"}},
	{12, "2 Kings", "2Ki", ot, 25, []string{"2 kgs", "2kgs", "2ki", "2 ki"}},
	{13, "1 Chronicles", "1Ch", ot, 29, []string{"1 chr", "1chr", "1ch", "1 chron"}},
	{14, "2 Chronicles", "2Ch", ot, 36, []string{"2 chr", "2chr", "2ch", "2 chron"}},
	{15, "Ezra", "Ezr", ot, 10, []string{"ezr"}},
	{16, "Nehemiah", "Neh", ot, 13, []string{"neh", "ne"}},
	{17, "Esther", "Est", ot, 10, []string{"est", "esth"}},
	{18, "Job", "Job", ot, 42, []string{"jb"}},
	{19, "Psalms", "Psa", ot, 150, []string{"ps", "psa", "psalm", "pss"}},
	{20, "Proverbs", "Pro", ot, 31, []string{"prov", "pro", "prv"}},
	{21, "Ecclesiastes", "Ecc", ot, 12, []string{"eccl", "ecc", "qoh"}},
	{22, "Song of Solomon", "Sng", ot, 8, []string{"song", "sos", "sng", "song of songs", "canticles"}},
	{23, "Isaiah", "Isa", ot, 66, []string{"isa", "is"}},
	{24, "Jeremiah", "Jer", ot, 52, []string{"jer", "je", "jr"}},
	{25, "Lamentations", "Lam", ot, 5, []string{"lam", "la"}},
	{26, "Ezekiel", "Ezk", ot, 48, []string{"ezek", "eze", "ezk"}},
	{27, "Daniel", "Dan", ot, 12, []string{"dan", "da", "dn"}},
	{28, "Hosea", "Hos", ot, 14, []string{"hos", "ho"}},
	{29, "Joel", "Jol", ot, 3, []string{"jol", "jl"}},
	{30, "Amos", "Amo", ot, 9, []string{"amo", "am"}},
	{31, "Obadiah", "Oba", ot, 1, []string{"obad", "oba", "ob"}},
	{32, "Jonah", "Jon", ot, 4, []string{"jon", "jnh"}},
	{33, "Micah", "Mic", ot, 7, []string{"mic", "mc"}},
	{34, "Nahum", "Nam", ot, 3, []string{"nah", "nam", "na"}},
	{35, "Habakkuk", "Hab", ot, 3, []string{"hab", "hb"}},
	{36, "Zephaniah", "Zep", ot, 3, []string{"zeph", "zep", "zp"}},
	{37, "Haggai", "Hag", ot, 2, []string{"hag", "hg"}},
	{38, "Zechariah", "Zec", ot, 14, []string{"zech", "zec", "zc"}},
	{39, "Malachi", "Mal", ot, 4, []string{"mal", "ml"}},
	{40, "Matthew", "Mat", nt, 28, []string{"matt", "mat", "mt"}},
	{41, "Mark", "Mrk", nt, 16, []string{"mrk", "mk", "mr"}},
	{42, "Luke", "Luk", nt, 24, []string{"luk", "lk"}},
	{43, "John", "Jhn", nt, 21, []string{"jn", "jhn", "joh"}},
	{44, "Acts", "Act", nt, 28, []string{"act", "ac"}},
	{45, "Romans", "Rom", nt, 16, []string{"rom", "ro", "rm"}},
	{46, "1 Corinthians", "1Co", nt, 16, []string{"1 cor", "1cor", "1co"}},
	{47, "2 Corinthians", "2Co", nt, 13, []string{"2 cor", "2cor", "2co"}},
	{48, "Galatians", "Gal", nt, 6, []string{"gal", "ga"}},
	{49, "Ephesians", "Eph", nt, 6, []string{"eph", "ephes"}},
	{50, "Philippians", "Php", nt, 4, []string{"phil", "php", "pp"}},
	{51, "Colossians", "Col", nt, 4, []string{"col", "co"}},
	{52, "1 Thessalonians", "1Th", nt, 5, []string{"1 thess", "1thess", "1th"}},
	{53, "2 Thessalonians", "2Th", nt, 3, []string{"2 thess", "2thess", "2th"}},
	{54, "1 Timothy", "1Ti", nt, 6, []string{"1 tim", "1tim", "1ti"}},
	{55, "2 Timothy", "2Ti", nt, 4, []string{"2 tim", "2tim", "2ti"}},
	{56, "Titus", "Tit", nt, 3, []string{"tit", "ti"}},
	{57, "Philemon", "Phm", nt, 1, []string{"phlm", "phm", "pm"}},
	{58, "Hebrews", "Heb", nt, 13, []string{"heb"}},
	{59, "James", "Jas", nt, 5, []string{"jas", "jm"}},
	{60, "1 Peter", "1Pe", nt, 5, []string{"1 pet", "1pet", "1pe"}},
	{61, "2 Peter", "2Pe", nt, 3, []string{"2 pet", "2pet", "2pe"}},
	{62, "1 John", "1Jn", nt, 5, []string{"1 jn", "1jn", "1 jhn"}},
	{63, "2 John", "2Jn", nt, 1, []string{"2 jn", "2jn"}},
	{64, "3 John", "3Jn", nt, 1, []string{"3 jn", "3jn"}},
	{65, "Jude", "Jud", nt, 1, []string{"jud", "jd"}},
	{66, "Revelation", "Rev", nt, 22, []string{"rev", "re", "apoc"}},
}
