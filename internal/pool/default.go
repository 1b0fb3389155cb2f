package pool

// DefaultTitle is shown when no catalog file overrides it.
const DefaultTitle = "Bingo Revelación"

var defaultItems = []Item{
	{ID: "bottle", Label: "Biberón", Icon: "🍼"},
	{ID: "pacifier", Label: "Chupete", Icon: "👶"},
	{ID: "stroller", Label: "Cochecito", Icon: "🛒"},
	{ID: "rattle", Label: "Sonajero", Icon: "🪇"},
	{ID: "teddy", Label: "Osito", Icon: "🧸"},
	{ID: "diaper", Label: "Pañal", Icon: "🧷"},
	{ID: "crib", Label: "Cuna", Icon: "🛏️"},
	{ID: "bib", Label: "Babero", Icon: "🥣"},
	{ID: "socks", Label: "Escarpines", Icon: "🧦"},
	{ID: "duck", Label: "Patito de goma", Icon: "🦆"},
	{ID: "balloon", Label: "Globo", Icon: "🎈"},
	{ID: "cake", Label: "Torta", Icon: "🎂"},
	{ID: "gift", Label: "Regalo", Icon: "🎁"},
	{ID: "stork", Label: "Cigüeña", Icon: "🕊️"},
	{ID: "footprint", Label: "Piecitos", Icon: "👣"},
	{ID: "moon", Label: "Luna", Icon: "🌙"},
	{ID: "star", Label: "Estrella", Icon: "⭐"},
	{ID: "heart", Label: "Corazón", Icon: "💗"},
	{ID: "blue", Label: "Celeste", Icon: "💙"},
	{ID: "pink", Label: "Rosa", Icon: "🩷"},
	{ID: "bath", Label: "Bañera", Icon: "🛁"},
	{ID: "lullaby", Label: "Canción de cuna", Icon: "🎶"},
	{ID: "photo", Label: "Ecografía", Icon: "📷"},
	{ID: "book", Label: "Cuento", Icon: "📖"},
	{ID: "blocks", Label: "Cubos", Icon: "🧩"},
	{ID: "bear", Label: "Mamadera térmica", Icon: "🍶"},
	{ID: "bow", Label: "Moño", Icon: "🎀"},
	{ID: "cap", Label: "Gorrito", Icon: "🧢"},
	{ID: "mobile", Label: "Móvil de cuna", Icon: "🎠"},
	{ID: "sun", Label: "Solcito", Icon: "☀️"},
}

// Default returns the built-in catalog.
func Default() *Pool {
	return MustNew(defaultItems)
}
