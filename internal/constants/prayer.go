package constants

const (
	// LoadingStatus is shown while either fetch is still pending
	LoadingStatus = "Loading..."

	// StatusSeparator joins the devotional message and the period name
	StatusSeparator = " — current prayer: "

	// NoPeriodLabel is rendered when no period is current
	NoPeriodLabel = "—"

	// Background colors per period
	ColorFajr    = "#5f5cfa"
	ColorDhuhr   = "#ffbb00"
	ColorAsr     = "#eb4640"
	ColorMaghrib = "#6bff4d"
	ColorDefault = "#000000"

	// Devotional messages per period
	MessageFajr    = "May your prayer be accepted."
	MessageDhuhr   = "There is no god but Allah. Muhammad is the messenger of God."
	MessageAsr     = "O Allah, send blessings upon Muhammad, the unlettered Prophet, and upon his family, and grant them best of peace."
	MessageMaghrib = "Recite Astaghfirullah."
	MessageIsha    = "To Allah, we belong, and to him, we will return."
	MessageDefault = "Awaiting the next prayer."
)
