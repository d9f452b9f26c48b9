package canon

// Protestant canon (66).
const (
	Genesis Book = iota + 1
	Exodus
	Leviticus
	Numbers
	Deuteronomy
	Joshua
	Judges
	Ruth
	FirstSamuel
	SecondSamuel
	FirstKings
	SecondKings
	FirstChronicles
	SecondChronicles
	Ezra
	Nehemiah
	Esther
	Job
	Psalms
	Proverbs
	Ecclesiastes
	SongOfSolomon
	Isaiah
	Jeremiah
	Lamentations
	Ezekiel
	Daniel
	Hosea
	Joel
	Amos
	Obadiah
	Jonah
	Micah
	Nahum
	Habakkuk
	Zephaniah
	Haggai
	Zechariah
	Malachi
	Matthew
	Mark
	Luke
	John
	Acts
	Romans
	FirstCorinthians
	SecondCorinthians
	Galatians
	Ephesians
	Philippians
	Colossians
	FirstThessalonians
	SecondThessalonians
	FirstTimothy
	SecondTimothy
	Titus
	Philemon
	Hebrews
	James
	FirstPeter
	SecondPeter
	FirstJohn
	SecondJohn
	ThirdJohn
	Jude
	Revelation

	// Catholic deuterocanon.
	Tobit
	Judith
	Wisdom
	Sirach
	Baruch
	FirstMaccabees
	SecondMaccabees
	EstherAdditions
	DanielSongOfThree
	DanielSusanna
	DanielBelAndTheDragon

	// Eastern Orthodox additions.
	FirstEsdras
	SecondEsdras
	PrayerOfManasseh
	Psalm151
	ThirdMaccabees
	FourthMaccabees
)

// Count is the number of canonical books.
const Count = int(FourthMaccabees)

type entry struct {
	abbrev string
	name   string
}

// table holds the abbreviation and display name of every book, indexed by Book.
// Index 0 is the invalid zero value.
var table = [Count + 1]entry{
	Genesis:             {"gn", "Genesis"},
	Exodus:              {"ex", "Exodus"},
	Leviticus:           {"lv", "Leviticus"},
	Numbers:             {"nm", "Numbers"},
	Deuteronomy:         {"dt", "Deuteronomy"},
	Joshua:              {"js", "Joshua"},
	Judges:              {"jud", "Judges"},
	Ruth:                {"rt", "Ruth"},
	FirstSamuel:         {"1sm", "1 Samuel"},
	SecondSamuel:        {"2sm", "2 Samuel"},
	FirstKings:          {"1kgs", "1 Kings"},
	SecondKings:         {"2kgs", "2 Kings"},
	FirstChronicles:     {"1ch", "1 Chronicles"},
	SecondChronicles:    {"2ch", "2 Chronicles"},
	Ezra:                {"ezr", "Ezra"},
	Nehemiah:            {"ne", "Nehemiah"},
	Esther:              {"et", "Esther"},
	Job:                 {"job", "Job"},
	Psalms:              {"ps", "Psalms"},
	Proverbs:            {"prv", "Proverbs"},
	Ecclesiastes:        {"ec", "Ecclesiastes"},
	SongOfSolomon:       {"so", "Song of Solomon"},
	Isaiah:              {"is", "Isaiah"},
	Jeremiah:            {"jr", "Jeremiah"},
	Lamentations:        {"lm", "Lamentations"},
	Ezekiel:             {"ez", "Ezekiel"},
	Daniel:              {"dn", "Daniel"},
	Hosea:               {"ho", "Hosea"},
	Joel:                {"jl", "Joel"},
	Amos:                {"am", "Amos"},
	Obadiah:             {"ob", "Obadiah"},
	Jonah:               {"jn", "Jonah"},
	Micah:               {"mi", "Micah"},
	Nahum:               {"na", "Nahum"},
	Habakkuk:            {"hk", "Habakkuk"},
	Zephaniah:           {"zp", "Zephaniah"},
	Haggai:              {"hg", "Haggai"},
	Zechariah:           {"zc", "Zechariah"},
	Malachi:             {"ml", "Malachi"},
	Matthew:             {"mt", "Matthew"},
	Mark:                {"mk", "Mark"},
	Luke:                {"lk", "Luke"},
	John:                {"jo", "John"},
	Acts:                {"act", "Acts"},
	Romans:              {"rm", "Romans"},
	FirstCorinthians:    {"1co", "1 Corinthians"},
	SecondCorinthians:   {"2co", "2 Corinthians"},
	Galatians:           {"gl", "Galatians"},
	Ephesians:           {"eph", "Ephesians"},
	Philippians:         {"ph", "Philippians"},
	Colossians:          {"cl", "Colossians"},
	FirstThessalonians:  {"1ts", "1 Thessalonians"},
	SecondThessalonians: {"2ts", "2 Thessalonians"},
	FirstTimothy:        {"1tm", "1 Timothy"},
	SecondTimothy:       {"2tm", "2 Timothy"},
	Titus:               {"tt", "Titus"},
	Philemon:            {"phm", "Philemon"},
	Hebrews:             {"hb", "Hebrews"},
	James:               {"jm", "James"},
	FirstPeter:          {"1pe", "1 Peter"},
	SecondPeter:         {"2pe", "2 Peter"},
	FirstJohn:           {"1jo", "1 John"},
	SecondJohn:          {"2jo", "2 John"},
	ThirdJohn:           {"3jo", "3 John"},
	Jude:                {"jd", "Jude"},
	Revelation:          {"re", "Revelation"},

	Tobit:                 {"tb", "Tobit"},
	Judith:                {"jdt", "Judith"},
	Wisdom:                {"ws", "Wisdom"},
	Sirach:                {"sir", "Sirach"},
	Baruch:                {"bar", "Baruch"},
	FirstMaccabees:        {"1mc", "1 Maccabees"},
	SecondMaccabees:       {"2mc", "2 Maccabees"},
	EstherAdditions:       {"etg", "Esther (Greek)"},
	DanielSongOfThree:     {"dn3", "Daniel (Song of Three)"},
	DanielSusanna:         {"dns", "Daniel (Susanna)"},
	DanielBelAndTheDragon: {"dnb", "Daniel (Bel and the Dragon)"},

	FirstEsdras:      {"1es", "1 Esdras"},
	SecondEsdras:     {"2es", "2 Esdras"},
	PrayerOfManasseh: {"pmn", "Prayer of Manasseh"},
	Psalm151:         {"ps151", "Psalm 151"},
	ThirdMaccabees:   {"3mc", "3 Maccabees"},
	FourthMaccabees:  {"4mc", "4 Maccabees"},
}
