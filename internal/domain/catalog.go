package domain

// standards is the static catalog of tunes
var standards = []Standard{
	{
		ChordProgression: "BbM7 | Gm7 C7 | Fm7 Bb7 | EbM7 | Am7b5 D7 | Gm7 | C7sus4 C7 | Fm7 Bb7 |",
		Composer:         "Thad Jones",
		Difficulty:       DifficultyIntermediate,
		ID:               "a-child-is-born",
		Key:              "Bb",
		Style:            "ballad",
		TimeSignature:    "4/4",
		Title:            "A Child is Born",
	},
	{
		ChordProgression: "FM7 | Dm7 G7 | Em7b5 A7 | Dm7 G7 | CM7 | Am7 D7 | Gm7 C7 | FM7 |",
		Composer:         "Jerome Kern",
		Difficulty:       DifficultyIntermediate,
		ID:               "a-fine-romance",
		Key:              "F",
		Style:            "swing",
		TimeSignature:    "4/4",
		Title:            "A Fine Romance",
	},
	{
		ChordProgression: "Dm6 | Dm6 | Eb7 | Dm6 | Gm6 | A7 | Dm6 | A7 |",
		Composer:         "Dizzy Gillespie",
		Difficulty:       DifficultyAdvanced,
		ID:               "a-night-in-tunisia",
		Key:              "Dm",
		Style:            "bebop",
		TimeSignature:    "4/4",
		Title:            "A Night in Tunisia",
	},
	{
		ChordProgression: "Gm | Gm | Gm | Gm | Fm7 | Bb7 | EbM7 | EbM7 |",
		Composer:         "Mongo Santamaria",
		Difficulty:       DifficultyIntermediate,
		ID:               "afro-blue",
		Key:              "G",
		Style:            "latin",
		TimeSignature:    "3/4",
		Title:            "Afro Blue",
	},
	{
		ChordProgression: "CM7 | Am7 D7 | Dm7 G7 | Em7 A7 | Dm7 G7 | Em7 A7 | Dm7 G7 | CM7 |",
		Composer:         "John Lewis",
		Difficulty:       DifficultyIntermediate,
		ID:               "afternoon-in-paris",
		Key:              "C",
		Style:            "swing",
		TimeSignature:    "4/4",
		Title:            "Afternoon in Paris",
	},
	{
		ChordProgression: "FM7 | E7 | Am7b5 D7 | Gm7 C7 | Am7b5 D7 | Gm7 C7 | FM7 | FM7 |",
		Composer:         "Sammy Fain",
		Difficulty:       DifficultyIntermediate,
		ID:               "alice-in-wonderland",
		Key:              "F",
		Style:            "ballad",
		TimeSignature:    "4/4",
		Title:            "Alice in Wonderland",
	},
	{
		ChordProgression: "G7 | G7 | G7 | G7 | C7 | C7 | G7 | G7 | D7 | C7 | G7 | G7 |",
		Composer:         "Miles Davis",
		Difficulty:       DifficultyIntermediate,
		ID:               "all-blues",
		Key:              "G",
		Style:            "modal",
		TimeSignature:    "6/8",
		Title:            "All Blues",
	},
	{
		ChordProgression: "CM7 | CM7 | E7 | E7 | A7 | A7 | Dm7 | Dm7 | E7 | E7 | Am7 | Am7 | Dm7 | G7 | CM7 | G7 |",
		Composer:         "Gerald Marks & Seymour Simons",
		Difficulty:       DifficultyBeginner,
		ID:               "all-of-me",
		Key:              "C",
		Style:            "swing",
		TimeSignature:    "4/4",
		Title:            "All of Me",
	},
	{
		ChordProgression: "EbM7 | Fm7 Bb7 | EbM7 | C7 | Fm7 | Bb7 | EbM7 | EbM7 |",
		Composer:         "Cole Porter",
		Difficulty:       DifficultyIntermediate,
		ID:               "all-of-you",
		Key:              "Eb",
		Style:            "swing",
		TimeSignature:    "4/4",
		Title:            "All of You",
	},
	{
		ChordProgression: "Fm7 | Bbm7 Eb7 | AbM7 | DbM7 | Dm7b5 G7 | CM7 | CM7 | Cm7 F7 |",
		Composer:         "Jerome Kern",
		Difficulty:       DifficultyAdvanced,
		ID:               "all-the-things-you-are",
		Key:              "Ab",
		Style:            "swing",
		TimeSignature:    "4/4",
		Title:            "All the Things You Are",
	},
	{
		ChordProgression: "Dm7 | G7 | CM7 | FM7 | Bm7b5 | E7 | Am7 | A7 |",
		Composer:         "Arthur Schwartz",
		Difficulty:       DifficultyIntermediate,
		ID:               "alone-together",
		Key:              "Dm",
		Style:            "ballad",
		TimeSignature:    "4/4",
		Title:            "Alone Together",
	},
	{
		ChordProgression: "BbM7 G7 | Cm7 F7 | Dm7 G7 | Cm7 F7 | BbM7 G7 | Cm7 F7 | BbM7 | BbM7 |",
		Composer:         "Charlie Parker & Dizzy Gillespie",
		Difficulty:       DifficultyAdvanced,
		ID:               "anthropology",
		Key:              "Bb",
		Style:            "bebop",
		TimeSignature:    "4/4",
		Title:            "Anthropology",
	},
	{
		ChordProgression: "GM7 | Em7 A7 | Am7 D7 | GM7 | Em7 A7 | Am7 D7 | GM7 | GM7 |",
		Composer:         "Vernon Duke",
		Difficulty:       DifficultyIntermediate,
		ID:               "april-in-paris",
		Key:              "G",
		Style:            "ballad",
		TimeSignature:    "4/4",
		Title:            "April in Paris",
	},
	{
		ChordProgression: "Gm7 | C7 | FM7 | BbM7 | Am7b5 | D7 | Gm7 | Gm7 |",
		Composer:         "Vernon Duke",
		Difficulty:       DifficultyAdvanced,
		ID:               "autumn-in-new-york",
		Key:              "G",
		Style:            "ballad",
		TimeSignature:    "4/4",
		Title:            "Autumn in New York",
	},
	{
		ChordProgression: "Cm7 | F7 | BbM7 | EbM7 | Am7b5 | D7 | Gm7 | Gm7 |",
		Composer:         "Joseph Kosma",
		Difficulty:       DifficultyBeginner,
		ID:               "autumn-leaves",
		Key:              "G",
		Style:            "swing",
		TimeSignature:    "4/4",
		Title:            "Autumn Leaves",
	},
	{
		ChordProgression: "Dm7 | Gm7 | A7 | Dm7 | Gm7 | A7 | Dm7 | Dm7 |",
		Composer:         "Victor Young",
		Difficulty:       DifficultyIntermediate,
		ID:               "beautiful-love",
		Key:              "Dm",
		Style:            "ballad",
		TimeSignature:    "4/4",
		Title:            "Beautiful Love",
	},
	{
		ChordProgression: "CM7 | Am7 | Dm7 | G7 | Em7 | Am7 | Dm7 G7 | CM7 |",
		Composer:         "Richard Rodgers",
		Difficulty:       DifficultyIntermediate,
		ID:               "bewitched",
		Key:              "C",
		Style:            "ballad",
		TimeSignature:    "4/4",
		Title:            "Bewitched",
	},
	{
		ChordProgression: "Am7 | Dm7 | G7 | CM7 | FM7 | Bm7b5 E7 | Am7 | Am7 |",
		Composer:         "Luiz Bonfa",
		Difficulty:       DifficultyIntermediate,
		ID:               "black-orpheus",
		Key:              "Am",
		Style:            "bossa nova",
		TimeSignature:    "4/4",
		Title:            "Black Orpheus",
	},
	{
		ChordProgression: "Cm7 | Fm7 | Dm7b5 | G7 | Cm7 | Cm7 | Ebm7 | Ab7 |",
		Composer:         "Kenny Dorham",
		Difficulty:       DifficultyIntermediate,
		ID:               "blue-bossa",
		Key:              "Cm",
		Style:            "latin",
		TimeSignature:    "4/4",
		Title:            "Blue Bossa",
	},
	{
		ChordProgression: "BbM7 | A7 | Dm7 | Db7 | Cm7 | F7 | BbM7 | BbM7 |",
		Composer:         "Miles Davis",
		Difficulty:       DifficultyAdvanced,
		ID:               "blue-in-green",
		Key:              "Bb",
		Style:            "modal",
		TimeSignature:    "4/4",
		Title:            "Blue In Green",
	},
	{
		ChordProgression: "Bb7 | Eb7 | Bb7 | Bb7 | Eb7 | Eb7 | Bb7 | Bb7 | F7 | Eb7 | Bb7 | F7 |",
		Composer:         "Thelonious Monk",
		Difficulty:       DifficultyIntermediate,
		ID:               "blue-monk",
		Key:              "Bb",
		Style:            "blues",
		TimeSignature:    "4/4",
		Title:            "Blue Monk",
	},
	{
		ChordProgression: "FM7 Em7b5 A7 | Dm7 G7 | Cm7 F7 | BbM7 | Bbm7 Eb7 | FM7 D7 | Gm7 C7 | FM7 Gm7 C7 |",
		Composer:         "Charlie Parker",
		Difficulty:       DifficultyAdvanced,
		ID:               "blues-for-alice",
		Key:              "F",
		Style:            "bebop",
		TimeSignature:    "4/4",
		Title:            "Blues for Alice",
	},
	{
		ChordProgression: "Eb7 | Ab7 | Eb7 | Eb7 | Ab7 | Ab7 | Eb7 | Eb7 | Bb7 | Ab7 | Eb7 | Bb7 |",
		Composer:         "John Coltrane",
		Difficulty:       DifficultyIntermediate,
		ID:               "blue-train",
		Key:              "Eb",
		Style:            "hard bop",
		TimeSignature:    "4/4",
		Title:            "Blue Train",
	},
	{
		ChordProgression: "DbM7 | Ebm7 Ab7 | DbM7 | Bbm7 Eb7 | AbM7 | Fm7 Bb7 | Ebm7 | Ab7 |",
		Composer:         "Johnny Green",
		Difficulty:       DifficultyAdvanced,
		ID:               "body-and-soul",
		Key:              "Db",
		Style:            "ballad",
		TimeSignature:    "4/4",
		Title:            "Body and Soul",
	},
	{
		ChordProgression: "Dm7 | G7 | CM7 | FM7 | Bm7b5 E7 | Am7 | A7 | Dm7 |",
		Composer:         "Antonio Carlos Jobim",
		Difficulty:       DifficultyIntermediate,
		ID:               "chega-de-saudade",
		Key:              "Dm",
		Style:            "bossa nova",
		TimeSignature:    "4/4",
		Title:            "Chega De Saudade",
	},
}
