package fixture

import "bookcatalog/internal/book"

func entry(title, author string, year int, genres ...string) book.Input {
	return book.Input{Title: title, Author: &author, Year: &year, Genres: genres}
}

// Books is the seed catalog used by the seed command and the HTTP
// integration tests. Several searches rely on its exact content: three
// books by Philip K. Dick, three titles containing "world" and five books
// from 1953, two of which have "th" in the title.
var Books = []book.Input{
	entry("Do Androids Dream of Electric Sheep?", "Philip K. Dick", 1968, "Sci-fi", "Dystopia", "Robots"),
	entry("The Man in the High Castle", "Philip K. Dick", 1962, "Sci-fi", "Alternate History"),
	entry("Ubik", "Philip K. Dick", 1969, "Sci-fi", "Philosophy", "Telepathy"),
	entry("Brave New World", "Aldous Huxley", 1932, "Sci-fi", "Dystopia", "Classic"),
	entry("Ringworld", "Larry Niven", 1970, "Sci-fi", "Space", "Aliens"),
	entry("The War of the Worlds", "H. G. Wells", 1898, "Sci-fi", "Aliens", "Classic"),
	entry("Childhood's End", "Arthur C. Clarke", 1953, "Sci-fi", "Aliens", "Philosophy"),
	entry("Fahrenheit 451", "Ray Bradbury", 1953, "Sci-fi", "Dystopia", "Classic"),
	entry("More Than Human", "Theodore Sturgeon", 1953, "Sci-fi", "Telepathy"),
	entry("Second Foundation", "Isaac Asimov", 1953, "Sci-fi", "Space", "Telepathy"),
	entry("The Caves of Steel", "Isaac Asimov", 1953, "Sci-fi", "Robots", "Mystery"),
	entry("Dune", "Frank Herbert", 1965, "Sci-fi", "Space", "Ecology", "Religion"),
	entry("Neuromancer", "William Gibson", 1984, "Sci-fi", "Cyberpunk"),
	entry("Starship Troopers", "Robert A. Heinlein", 1959, "Sci-fi", "Space", "Aliens", "Military"),
	entry("The Left Hand of Darkness", "Ursula K. Le Guin", 1969, "Sci-fi", "Aliens", "Philosophy"),
	entry("Hyperion", "Dan Simmons", 1989, "Sci-fi", "Space", "Religion"),
	entry("Snow Crash", "Neal Stephenson", 1992, "Sci-fi", "Cyberpunk", "Humor"),
	entry("Nineteen Eighty-Four", "George Orwell", 1949, "Sci-fi", "Dystopia", "Classic"),
	entry("The Hitchhiker's Guide to the Galaxy", "Douglas Adams", 1979, "Sci-fi", "Space", "Humor"),
	entry("Ender's Game", "Orson Scott Card", 1985, "Sci-fi", "Space", "Aliens", "Military"),
	entry("Solaris", "Stanisław Lem", 1961, "Sci-fi", "Aliens", "Psychological"),
	entry("The Forever War", "Joe Haldeman", 1974, "Sci-fi", "Space", "Military", "Time Travel"),
	entry("A Canticle for Leibowitz", "Walter M. Miller Jr.", 1959, "Sci-fi", "Post-apocalyptic", "Religion"),
	entry("The Stars My Destination", "Alfred Bester", 1956, "Sci-fi", "Space", "Telepathy"),
	entry("Frankenstein", "Mary Shelley", 1818, "Sci-fi", "Horror", "Classic"),
	entry("Flowers for Algernon", "Daniel Keyes", 1966, "Sci-fi", "Psychological"),
	entry("Kindred", "Octavia E. Butler", 1979, "Sci-fi", "Time Travel"),
}
