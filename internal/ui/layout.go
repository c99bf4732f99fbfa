package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutSplitWidth is the width at which the form and the book list are
	// shown side by side instead of stacked.
	LayoutSplitWidth = 100

	// LayoutExtraWideWidth is the threshold for giving the list more room.
	LayoutExtraWideWidth = 160
)

// Form sizing.
const (
	// DescriptionHeight is the number of visible lines in the description box.
	DescriptionHeight = 3

	// FormMinWidth keeps the inputs usable in narrow split layouts.
	FormMinWidth = 36

	// TitleCharLimit and AuthorCharLimit bound the single-line inputs.
	TitleCharLimit  = 200
	AuthorCharLimit = 200

	// DescriptionCharLimit bounds the description box.
	DescriptionCharLimit = 2000
)

// ActivityLineLimit is the number of log lines shown in the activity overlay.
const ActivityLineLimit = 500
