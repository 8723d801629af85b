package normalize

// Shared fixture types exercising each capability.

type apiKey string

func (apiKey) Sensitive() {}

type color int

const (
	colorRed   color = 1
	colorGreen color = 2
)

func (c color) EnumValue() any { return int(c) }

type record struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Internal string `json:"-"`
	secret   string
}

type model struct {
	ID int
}

func (m model) ModelDump() map[string]any {
	return map[string]any{"id": m.ID, "source": "model_dump"}
}

type legacyModel struct {
	ID int
}

func (m legacyModel) ToMap() map[string]any {
	return map[string]any{"id": m.ID, "source": "to_map"}
}

type pairBag struct{}

func (pairBag) Items() []Item {
	return []Item{
		{Key: "kept", Value: 1},
		{Key: "_dropped", Value: 2},
	}
}

// dualModel implements both ModelDumper and Mapper; ModelDumper wins.
type dualModel struct{}

func (dualModel) ModelDump() map[string]any { return map[string]any{"via": "model_dump"} }

func (dualModel) ToMap() map[string]any { return map[string]any{"via": "to_map"} }

// sensitiveEnum implements both Sensitive and Enum; redaction wins.
type sensitiveEnum int

func (sensitiveEnum) Sensitive() {}

func (s sensitiveEnum) EnumValue() any { return int(s) }

// richEnum normalizes to a container value rather than a scalar.
type richEnum struct{}

func (richEnum) EnumValue() any { return map[string]any{"_raw": true} }
