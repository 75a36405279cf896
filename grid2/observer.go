package grid2

// NoticeKind identifies a grid change reported to an Observer
type NoticeKind uint8

const (
	NoticeInsert NoticeKind = iota
	NoticeRemove
	NoticeResizeStart
	NoticeResizeEnd
	NoticeFlip
	NoticeLocalize
	NoticeSwap
	NoticeParse
)

var noticeNames = [...]string{
	NoticeInsert:      "insert",
	NoticeRemove:      "remove",
	NoticeResizeStart: "resize-start",
	NoticeResizeEnd:   "resize-end",
	NoticeFlip:        "flip",
	NoticeLocalize:    "localize",
	NoticeSwap:        "swap",
	NoticeParse:       "parse",
}

func (k NoticeKind) String() string {
	if int(k) < len(noticeNames) {
		return noticeNames[k]
	}
	return "unknown"
}

// Notice describes one change; Node is the slot or Division concerned,
// which may no longer be valid for NoticeRemove
type Notice struct {
	Kind NoticeKind
	Node NodeID
}

// Observer is called synchronously after each change and must not mutate
// the grid
type Observer func(Notice)
