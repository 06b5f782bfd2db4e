package domain

// defaultEntries is the built-in plant table. Order matters: see Matcher.Match.
var defaultEntries = []CatalogEntry{
	// High light / direct sun (> 5000 lux)
	{"cactus", PlantLightRequirement{"Cactus", 5000, 50000, "Necesita luz directa y muy brillante."}},
	{"suculenta", PlantLightRequirement{"Suculenta", 5000, 50000, "Requiere mucha luz, preferiblemente sol directo."}},
	{"succulent", PlantLightRequirement{"Succulent", 5000, 50000, "Requires lots of light, preferably direct sun."}},
	{"lavanda", PlantLightRequirement{"Lavanda", 10000, 100000, "Sol directo intenso."}},
	{"lavender", PlantLightRequirement{"Lavender", 10000, 100000, "Intense direct sun."}},
	{"albahaca", PlantLightRequirement{"Albahaca", 5000, 50000, "Sol directo al menos 6 horas."}},
	{"basil", PlantLightRequirement{"Basil", 5000, 50000, "Direct sun at least 6 hours."}},
	{"romero", PlantLightRequirement{"Romero", 10000, 80000, "Necesita pleno sol para crecer bien."}},
	{"rosemary", PlantLightRequirement{"Rosemary", 10000, 80000, "Needs full sun to thrive."}},
	{"geranio", PlantLightRequirement{"Geranio", 4000, 30000, "Luz solar directa o muy brillante."}},
	{"geranium", PlantLightRequirement{"Geranium", 4000, 30000, "Direct sunlight or very bright light."}},
	{"olivo", PlantLightRequirement{"Olivo", 10000, 90000, "Sol directo, ideal para exteriores soleados."}},
	{"olive tree", PlantLightRequirement{"Olive Tree", 10000, 90000, "Direct sun, ideal for sunny outdoors."}},
	{"tomate", PlantLightRequirement{"Tomate", 20000, 100000, "Requiere mucha luz solar para dar fruto."}},
	{"tomato", PlantLightRequirement{"Tomato", 20000, 100000, "Requires lots of sunlight to fruit."}},

	// Bright indirect light / partial shade (1000 - 5000 lux)
	{"monstera", PlantLightRequirement{"Monstera (Costilla de Adán)", 1000, 4000, "Prefiere luz indirecta brillante."}},
	{"ficus", PlantLightRequirement{"Ficus", 2000, 10000, "Necesita luz brillante pero indirecta."}},
	{"ficus elastica", PlantLightRequirement{"Ficus Elástica (Hule)", 1500, 5000, "Luz brillante indirecta, tolera algo de sombra."}},
	{"orquidea", PlantLightRequirement{"Orquídea", 1500, 3500, "Luz filtrada o indirecta brillante."}},
	{"orchid", PlantLightRequirement{"Orchid", 1500, 3500, "Filtered or bright indirect light."}},
	{"aloe vera", PlantLightRequirement{"Aloe Vera", 4000, 15000, "Luz brillante, algo de sol directo está bien."}},
	{"jade", PlantLightRequirement{"Árbol de Jade", 3000, 10000, "Luz brillante, algunas horas de sol directo."}},
	{"photos", PlantLightRequirement{"Potos", 800, 3000, "Prefiere luz media, pero tolera baja luz."}},
	{"pothos", PlantLightRequirement{"Pothos", 800, 3000, "Prefers medium light, but tolerates low light."}},
	{"dracaena", PlantLightRequirement{"Dracaena (Palo de Brasil)", 1000, 3000, "Luz filtrada, evitar sol directo que quema las hojas."}},
	{"croton", PlantLightRequirement{"Crotón", 2000, 8000, "Necesita luz brillante para mantener sus colores."}},
	{"violeta africana", PlantLightRequirement{"Violeta Africana", 1000, 2500, "Luz indirecta media, ideal cerca de ventanas."}},
	{"african violet", PlantLightRequirement{"African Violet", 1000, 2500, "Medium indirect light, ideal near windows."}},
	{"begonia", PlantLightRequirement{"Begonia", 1000, 3000, "Luz brillante indirecta, sombra parcial."}},
	{"bambu", PlantLightRequirement{"Bambú de la Suerte", 1000, 3000, "Luz brillante filtrada."}},
	{"lucky bamboo", PlantLightRequirement{"Lucky Bamboo", 1000, 3000, "Bright filtered light."}},
	{"hiedra", PlantLightRequirement{"Hiedra Inglesa", 1000, 4000, "Luz indirecta media a brillante."}},
	{"english ivy", PlantLightRequirement{"English Ivy", 1000, 4000, "Medium to bright indirect light."}},
	{"pilea", PlantLightRequirement{"Pilea (Planta China del Dinero)", 1500, 4000, "Luz brillante indirecta."}},

	// Low light / shade (< 1000 lux)
	{"helecho", PlantLightRequirement{"Helecho", 500, 2500, "Prefiere sombra o luz indirecta baja."}},
	{"fern", PlantLightRequirement{"Fern", 500, 2500, "Prefers shade or low indirect light."}},
	{"sansevieria", PlantLightRequirement{"Sansevieria (Lengua de suegra)", 500, 5000, "Muy tolerante, desde sombra hasta luz brillante."}},
	{"snake plant", PlantLightRequirement{"Snake Plant", 500, 5000, "Very tolerant, low to bright light."}},
	{"espatifilo", PlantLightRequirement{"Espatifilo (Cuna de Moisés)", 500, 2000, "Luz baja a media, evitar sol directo."}},
	{"peace lily", PlantLightRequirement{"Peace Lily", 500, 2000, "Low to medium light, avoid direct sun."}},
	{"calathea", PlantLightRequirement{"Calathea", 400, 1500, "Sombra parcial, luz indirecta baja."}},
	{"zamioculca", PlantLightRequirement{"Zamioculca (ZZ Plant)", 300, 2500, "Tolera muy poca luz, excelente para oficinas."}},
	{"zz plant", PlantLightRequirement{"ZZ Plant", 300, 2500, "Tolerates very low light, great for offices."}},
	{"dieffenbachia", PlantLightRequirement{"Dieffenbachia (Lotería)", 500, 2000, "Luz filtrada baja a media."}},
	{"aglaonema", PlantLightRequirement{"Aglaonema", 500, 2000, "Tolera poca luz, aunque los colores mejoran con más luz."}},
	{"cinta", PlantLightRequirement{"Cinta (Malamadre/Spider Plant)", 800, 2500, "Se adapta bien a luz media y baja."}},
	{"spider plant", PlantLightRequirement{"Spider Plant", 800, 2500, "Adapts well to medium and low light."}},
	{"filodendro", PlantLightRequirement{"Filodendro", 500, 2500, "Luz indirecta media o baja."}},
	{"philodendron", PlantLightRequirement{"Philodendron", 500, 2500, "Medium or low indirect light."}},
	{"bromelia", PlantLightRequirement{"Bromelia", 800, 3000, "Luz indirecta, tolera sombra parcial."}},
}

// DefaultCatalog returns the built-in multilingual plant catalog
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultEntries)
	if err != nil {
		panic("domain: invalid built-in catalog: " + err.Error())
	}
	return c
}
