package canon

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/FocuswithJustin/bible-io/core/errors"
)

// aliases are common human abbreviations accepted by Resolve. They take
// precedence over the canonical abbreviations, so "jn" resolves to John here
// even though the JSON key "jn" is Jonah.
var aliases = map[string]Book{
	"gen": Genesis, "ge": Genesis,
	"exo": Exodus, "exod": Exodus,
	"lev": Leviticus, "le": Leviticus,
	"num": Numbers, "nu": Numbers,
	"deut": Deuteronomy, "deu": Deuteronomy,
	"jos": Joshua, "josh": Joshua,
	"jdg": Judges, "judg": Judges,
	"rut": Ruth, "ru": Ruth,
	"1sa": FirstSamuel, "1sam": FirstSamuel,
	"2sa": SecondSamuel, "2sam": SecondSamuel,
	"1ki": FirstKings, "1kings": FirstKings,
	"2ki": SecondKings, "2kings": SecondKings,
	"1chr": FirstChronicles,
	"2chr": SecondChronicles,
	"ezra": Ezra,
	"neh":  Nehemiah,
	"est":  Esther, "esth": Esther,
	"jb":  Job,
	"psa": Psalms, "psalm": Psalms,
	"pro": Proverbs, "prov": Proverbs,
	"ecc": Ecclesiastes, "eccl": Ecclesiastes,
	"sos": SongOfSolomon, "song": SongOfSolomon, "songofsongs": SongOfSolomon,
	"isa":  Isaiah,
	"jer":  Jeremiah,
	"lam":  Lamentations,
	"ezek": Ezekiel, "eze": Ezekiel,
	"dan": Daniel, "da": Daniel,
	"hos": Hosea,
	"joe": Joel,
	"amo": Amos,
	"oba": Obadiah, "obad": Obadiah,
	"jon": Jonah, "jnh": Jonah,
	"mic": Micah,
	"nah": Nahum,
	"hab": Habakkuk,
	"zep": Zephaniah, "zeph": Zephaniah,
	"hag": Haggai,
	"zec": Zechariah, "zech": Zechariah,
	"mal": Malachi,
	"mat": Matthew, "matt": Matthew,
	"mar": Mark, "mrk": Mark,
	"luk": Luke,
	"jhn": John, "jn": John,
	"ac":   Acts,
	"rom":  Romans,
	"1cor": FirstCorinthians,
	"2cor": SecondCorinthians,
	"gal":  Galatians,
	"phil": Philippians, "php": Philippians,
	"col": Colossians,
	"1th": FirstThessalonians, "1thes": FirstThessalonians,
	"2th": SecondThessalonians, "2thes": SecondThessalonians,
	"1ti": FirstTimothy, "1tim": FirstTimothy,
	"2ti": SecondTimothy, "2tim": SecondTimothy,
	"tit":  Titus,
	"phlm": Philemon,
	"heb":  Hebrews,
	"jas":  James, "jam": James,
	"1pet": FirstPeter,
	"2pet": SecondPeter,
	"1jn":  FirstJohn, "1joh": FirstJohn,
	"2jn": SecondJohn, "2joh": SecondJohn,
	"3jn": ThirdJohn, "3joh": ThirdJohn,
	"jud": Jude,
	"rev": Revelation,

	"tob":  Tobit,
	"wis":  Wisdom,
	"1mac": FirstMaccabees,
	"2mac": SecondMaccabees,
	"estg": EstherAdditions, "addesth": EstherAdditions,
	"dan3": DanielSongOfThree,
	"sus":  DanielSusanna,
	"bel":  DanielBelAndTheDragon,

	"1esd": FirstEsdras,
	"2esd": SecondEsdras,
	"man":  PrayerOfManasseh, "prman": PrayerOfManasseh,
	"3mac": ThirdMaccabees,
	"4mac": FourthMaccabees,
}

// byName maps the normalized full name of every book to the book.
var byName = make(map[string]Book, Count)

func init() {
	for b := Genesis; int(b) <= Count; b++ {
		byName[Normalize(table[b].name)] = b
	}
}

// Normalize case-folds s and strips the spacing and punctuation people put in
// book names, so "1 John", "1john" and "1 JOHN." compare equal.
func Normalize(s string) string {
	// A Caser is stateful, so each call gets its own.
	folded := cases.Fold().String(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '.', '(', ')', '_', '-':
			return -1
		}
		return r
	}, folded)
}

// Resolve maps a human-typed book name to a Book. It tries the alias table,
// then the canonical abbreviations, then the full display names.
func Resolve(s string) (Book, error) {
	key := Normalize(s)
	if key == "" {
		return 0, errors.NewUnknownBook(s)
	}
	if b, ok := aliases[key]; ok {
		return b, nil
	}
	if b, ok := byAbbrev[key]; ok {
		return b, nil
	}
	if b, ok := byName[key]; ok {
		return b, nil
	}
	return 0, errors.NewUnknownBook(s)
}

// Lookup maps a book identifier to a Book. Canonical abbreviations win, so
// every Abbrev round-trips even where an alias uses the same letters ("jn" is
// Jonah here but John in Resolve). Anything else falls back to Resolve.
func Lookup(s string) (Book, error) {
	if b, err := Parse(strings.TrimSpace(s)); err == nil {
		return b, nil
	}
	return Resolve(s)
}
