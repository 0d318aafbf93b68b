package components

const (
	ColumnWidth          = 32 // outer width of a column, borders included
	TaskCardWidth        = 28
	TaskCardHeight       = 5  // TaskCardHeight is the fixed height of the task card
	taskTitleMaxLength   = 24 // Maximum display length for task title before truncation
	columnBorderOverhead = 3  // top border + bottom padding + bottom border
	headerLines          = 1  // column name and count
	scrollIndicatorLines = 2  // "more above" and "more below"
	descriptionMinWidth  = 20
)

const createdDateLayout = "Jan 2, 2006"
