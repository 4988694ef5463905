package habit

// DefaultActivities is the starter catalog used when nothing has been
// persisted yet.
func DefaultActivities() []Activity {
	return []Activity{
		NewActivity("Exercise", RGB(235, 87, 87)),
		NewActivity("Read", RGB(242, 201, 76)),
		NewActivity("Meditate", RGB(111, 207, 151)),
		NewActivity("Journal", RGB(86, 204, 242)),
		NewActivity("Walk", RGB(47, 128, 237)),
		NewActivity("Drink water", RGB(45, 156, 219)),
		NewActivity("Sleep 8h", RGB(155, 81, 224)),
		NewActivity("Stretch", RGB(187, 107, 217)),
		NewActivity("No sugar", RGB(33, 150, 83)),
		NewActivity("Practice music", RGB(242, 153, 74)),
		NewActivity("Study language", RGB(240, 98, 146)),
		NewActivity("Tidy up", RGB(128, 128, 128)),
		NewActivity("Call family", RGB(38, 166, 154)),
	}
}
