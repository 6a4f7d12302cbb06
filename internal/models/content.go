package models

// Unit представляет дизайн боевой единицы в хранилище.
// Полезная нагрузка изменений с ContentType "unit".
type Unit struct {
	ID       string `json:"id"`        // ID уникальный идентификатор элемента (UUID)
	Name     string `json:"name"`      // Name название дизайна (например, "Marauder MAD-3R")
	Chassis  string `json:"chassis"`   // Chassis шасси дизайна
	Variant  string `json:"variant"`   // Variant код варианта
	TechBase string `json:"tech_base"` // TechBase технологическая база ("inner_sphere", "clan", "mixed")
	Tonnage  int    `json:"tonnage"`   // Tonnage масса в тоннах
	BV       int    `json:"bv"`        // BV боевая ценность дизайна
}

// Pilot представляет пилота в хранилище.
// Полезная нагрузка изменений с ContentType "pilot".
type Pilot struct {
	ID          string `json:"id"`          // ID уникальный идентификатор элемента (UUID)
	Name        string `json:"name"`        // Name имя пилота
	Callsign    string `json:"callsign"`    // Callsign позывной
	Affiliation string `json:"affiliation"` // Affiliation фракция или наёмное подразделение
	Gunnery     int    `json:"gunnery"`     // Gunnery навык стрельбы (0-8, меньше лучше)
	Piloting    int    `json:"piloting"`    // Piloting навык пилотирования (0-8, меньше лучше)
}

// ForceSlot связывает дизайн и пилота внутри соединения.
type ForceSlot struct {
	UnitID  string `json:"unit_id"`  // UnitID идентификатор дизайна
	PilotID string `json:"pilot_id"` // PilotID идентификатор пилота (может быть пустым)
}

// Force представляет соединение: именованный список слотов юнит+пилот.
// Полезная нагрузка изменений с ContentType "force".
type Force struct {
	ID    string      `json:"id"`    // ID уникальный идентификатор элемента (UUID)
	Name  string      `json:"name"`  // Name название соединения (например, "Stone's Lament, Alpha Lance")
	Era   string      `json:"era"`   // Era эпоха соединения
	Slots []ForceSlot `json:"slots"` // Slots состав соединения
}
