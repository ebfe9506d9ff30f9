package domain

// Badge carries the display label and color token for an enum value.
// Views look presentation attributes up here instead of keeping their
// own copies of the mapping.
type Badge struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var statusBadges = map[TicketStatus]Badge{
	TicketStatusOpen:       {Label: "Open", Color: "blue"},
	TicketStatusInProgress: {Label: "In Progress", Color: "orange"},
	TicketStatusResolved:   {Label: "Resolved", Color: "green"},
	TicketStatusClosed:     {Label: "Closed", Color: "gray"},
}

var priorityBadges = map[TicketPriority]Badge{
	TicketPriorityCritical: {Label: "Critical", Color: "red"},
	TicketPriorityHigh:     {Label: "High", Color: "orange"},
	TicketPriorityMedium:   {Label: "Medium", Color: "yellow"},
	TicketPriorityLow:      {Label: "Low", Color: "blue"},
}

var categoryBadges = map[TicketCategory]Badge{
	CategoryHardware:    {Label: "Hardware", Color: "slate"},
	CategorySoftware:    {Label: "Software", Color: "slate"},
	CategoryPeripherals: {Label: "Peripherals", Color: "slate"},
	CategoryAccess:      {Label: "Access", Color: "slate"},
	CategoryNetwork:     {Label: "Network", Color: "slate"},
	CategoryOther:       {Label: "Other", Color: "slate"},
}

// StatusBadge returns presentation attributes for a status.
func StatusBadge(s TicketStatus) Badge {
	if b, ok := statusBadges[s]; ok {
		return b
	}
	return Badge{Label: string(s), Color: "gray"}
}

// PriorityBadge returns presentation attributes for a priority.
func PriorityBadge(p TicketPriority) Badge {
	if b, ok := priorityBadges[p]; ok {
		return b
	}
	return Badge{Label: string(p), Color: "gray"}
}

// CategoryBadge returns presentation attributes for a category.
func CategoryBadge(c TicketCategory) Badge {
	if b, ok := categoryBadges[c]; ok {
		return b
	}
	return Badge{Label: string(c), Color: "slate"}
}
