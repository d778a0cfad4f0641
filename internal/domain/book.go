package domain

import "strconv"

// Book is a canonical Bible book. IDs follow the KJV ordering used by the
// verse store: 1 = Genesis, 40 = Matthew, 66 = Revelation.
type Book struct {
	ID   int
	Name string
	OSIS string
}

var canon = []Book{
	{1, "Genesis", "Gen"},
	{2, "Exodus", "Exod"},
	{3, "Leviticus", "Lev"},
	{4, "Numbers", "Num"},
	{5, "Deuteronomy", "Deut"},
	{6, "Joshua", "Josh"},
	{7, "Judges", "Judg"},
	{8, "Ruth", "Ruth"},
	{9, "1 Samuel", "1Sam"},
	{10, "2 Samuel", "2Sam"},
	{11, "1 Kings", "1Kgs"},
	{12, "2 Kings", "2Kgs"},
	{13, "1 Chronicles", "1Chr"},
	{14, "2 Chronicles", "2Chr"},
	{15, "Ezra", "Ezra"},
	{16, "Nehemiah", "Neh"},
	{17, "Esther", "Esth"},
	{18, "Job", "Job"},
	{19, "Psalms", "Ps"},
	{20, "Proverbs", "Prov"},
	{21, "Ecclesiastes", "Eccl"},
	{22, "Song of Solomon", "Song"},
	{23, "Isaiah", "Isa"},
	{24, "Jeremiah", "Jer"},
	{25, "Lamentations", "Lam"},
	{26, "Ezekiel", "Ezek"},
	{27, "Daniel", "Dan"},
	{28, "Hosea", "Hos"},
	{29, "Joel", "Joel"},
	{30, "Amos", "Amos"},
	{31, "Obadiah", "Obad"},
	{32, "Jonah", "Jonah"},
	{33, "Micah", "Mic"},
	{34, "Nahum", "Nah"},
	{35, "Habakkuk", "Hab"},
	{36, "Zephaniah", "Zeph"},
	{37, "Haggai", "Hag"},
	{38, "Zechariah", "Zech"},
	{39, "Malachi", "Mal"},
	{40, "Matthew", "Matt"},
	{41, "Mark", "Mark"},
	{42, "Luke", "Luke"},
	{43, "John", "John"},
	{44, "Acts", "Acts"},
	{45, "Romans", "Rom"},
	{46, "1 Corinthians", "1Cor"},
	{47, "2 Corinthians", "2Cor"},
	{48, "Galatians", "Gal"},
	{49, "Ephesians", "Eph"},
	{50, "Philippians", "Phil"},
	{51, "Colossians", "Col"},
	{52, "1 Thessalonians", "1Thess"},
	{53, "2 Thessalonians", "2Thess"},
	{54, "1 Timothy", "1Tim"},
	{55, "2 Timothy", "2Tim"},
	{56, "Titus", "Titus"},
	{57, "Philemon", "Phlm"},
	{58, "Hebrews", "Heb"},
	{59, "James", "Jas"},
	{60, "1 Peter", "1Pet"},
	{61, "2 Peter", "2Pet"},
	{62, "1 John", "1John"},
	{63, "2 John", "2John"},
	{64, "3 John", "3John"},
	{65, "Jude", "Jude"},
	{66, "Revelation", "Rev"},
}

// Books returns the canonical book table ordered by ID. The returned slice is
// a copy and may be modified by the caller.
func Books() []Book {
	out := make([]Book, len(canon))
	copy(out, canon)
	return out
}

// BookByID returns the book with the given ID.
func BookByID(id int) (Book, bool) {
	if id < 1 || id > len(canon) {
		return Book{}, false
	}
	return canon[id-1], true
}

// FindBook resolves a user-supplied reference: a numeric ID, a full name or an
// OSIS abbreviation, compared case-insensitively.
func FindBook(ref string) (Book, bool) {
	ref = NormalizeText(ref)
	if ref == "" {
		return Book{}, false
	}
	if id, err := strconv.Atoi(ref); err == nil {
		return BookByID(id)
	}
	for _, b := range canon {
		if NormalizeText(b.Name) == ref || NormalizeText(b.OSIS) == ref {
			return b, true
		}
	}
	return Book{}, false
}

// Canon exposes the canonical book table through methods so it can be
// injected where a book catalog is expected.
type Canon struct{}

func (Canon) Books() []Book                    { return Books() }
func (Canon) BookByID(id int) (Book, bool)     { return BookByID(id) }
func (Canon) FindBook(ref string) (Book, bool) { return FindBook(ref) }
