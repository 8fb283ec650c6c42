package model

// Event - DPM get-events 응답의 개별 이벤트
type Event struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	VenueName    string `json:"venue_name"`
	POIsCount    int    `json:"pois_count"`
	RoutesCount  int    `json:"routes_count"`
	BeaconsCount int    `json:"beacons_count"`
}

type EventStatus string

const (
	EventUpcoming EventStatus = "Upcoming"
	EventActive   EventStatus = "Active"
	EventPast     EventStatus = "Past"
)

// EventSummary - 목록 화면용으로 가공된 이벤트 (조회 시마다 다시 계산)
type EventSummary struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Location string      `json:"location"`
	Date     string      `json:"date"`
	Status   EventStatus `json:"status"`
	POIs     int         `json:"pois"`
}

type POIType string

const (
	POIService   POIType = "service"
	POIFood      POIType = "food"
	POIVenue     POIType = "venue"
	POISocial    POIType = "social"
	POIEmergency POIType = "emergency"
)

// POI - 평면도 픽셀 좌표 기준 관심 지점
type POI struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        POIType `json:"type"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Description string  `json:"description,omitempty"`
	Icon        string  `json:"icon,omitempty"`
}

// EventPOI - get-event-data 응답의 POI. type/description 누락 여부를 구분하기 위해 포인터 사용
type EventPOI struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        *POIType `json:"type"`
	X           float64  `json:"x"`
	Y           float64  `json:"y"`
	Description *string  `json:"description"`
	Icon        string   `json:"icon,omitempty"`
}

type Floorplan struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ImageURL string  `json:"image_url,omitempty"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
}

// EventDetail - get-event-data 응답 (내비게이션용 상세)
type EventDetail struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	VenueName   string              `json:"venue_name,omitempty"`
	StartDate   string              `json:"start_date,omitempty"`
	EndDate     string              `json:"end_date,omitempty"`
	POIs        []EventPOI          `json:"pois"`
	Floorplan   *Floorplan          `json:"floorplan,omitempty"`
	Nodes       []NavigationNode    `json:"nodes,omitempty"`
	Segments    []NavigationSegment `json:"segments,omitempty"`
}

type NavigationNode struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type NavigationSegment struct {
	ID         string  `json:"id"`
	FromNodeID string  `json:"from_node_id"`
	ToNodeID   string  `json:"to_node_id"`
	Distance   float64 `json:"distance,omitempty"`
}
