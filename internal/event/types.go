// internal/event/types.go
package event

const (
	MarkerShown       EventType = "MarkerShown"       // показан диск колец
	MarkerOutlined    EventType = "MarkerOutlined"    // показано одно кольцо
	MarkerHidden      EventType = "MarkerHidden"      // все кольца скрыты
	MarkerRegenerated EventType = "MarkerRegenerated" // кольца пересозданы
	ConfigReloaded    EventType = "ConfigReloaded"
)

// MarkerShownData is attached to MarkerShown and MarkerOutlined events.
type MarkerShownData struct {
	Radius  int   // запрошенный радиус
	Rings   []int // индексы видимых колец
	AnchorX float64
	AnchorY float64
	AnchorZ float64
}

// MarkerRegeneratedData is attached to MarkerRegenerated events.
type MarkerRegeneratedData struct {
	Layout    string
	RingCount int
	NodeCount int
}
