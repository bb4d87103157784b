package domain

// DashboardWidget describes one configurable dashboard panel
type DashboardWidget struct {
	ID          string `json:"widgetID"`
	Name        string `json:"widgetName"`
	Scale       string `json:"widgetScale"`
	Position    int32  `json:"widgetUserPosition"`
	IsDeleted   bool   `json:"isDeleted"`
	MappingID   int32  `json:"widgetMappingID,omitempty"`
	ClientID    int32  `json:"clientID,omitempty"`
	UserID      int32  `json:"userID,omitempty"`
	IsEditable  bool   `json:"isEditable"`
	Description string `json:"widgetNameDisplay,omitempty"`
}

// DashboardStats is the headline counters strip
type DashboardStats struct {
	OpenAgreements    int32 `json:"openAgreement"`
	OverdueAgreements int32 `json:"overDues"`
	DueIn             int32 `json:"dueIn"`
	TodaysReservation int32 `json:"todaysReservationCount"`
	TodaysArrival     int32 `json:"todaysArrivalsCount"`
	PendingPayment    int32 `json:"pendingPayment"`
	ServiceAlerts     int32 `json:"serviceAlerts"`
	OnRent            int32 `json:"onRent"`
}

// DashboardNotice is a banner message shown above the dashboard
type DashboardNotice struct {
	ID            int32  `json:"noticeId"`
	Title         string `json:"titleText"`
	Description   string `json:"description,omitempty"`
	Link          string `json:"link,omitempty"`
	IgnoreDismiss bool   `json:"ignoreDismiss"`
}
