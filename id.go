package overlay

import (
	"fmt"
	"sync/atomic"
)

// Kind is the closed set of widget variants.
type Kind uint8

const (
	KindLabel Kind = iota
	KindDataLabel
	KindButton
	KindFlipSwitch
	KindTextInput
	KindNumericInput
	KindSlider
	KindDropdown
	KindWindow
	kindCount
)

var kindNames = [kindCount]string{
	"Label", "DataLabel", "Button", "FlipSwitch", "TextInput",
	"NumericInput", "Slider", "Dropdown", "FloatingWindow",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// WidgetID identifies a widget for the lifetime of the process.
// N counts per kind and is never reused.
type WidgetID struct {
	Kind Kind
	N    uint64
}

func (id WidgetID) String() string {
	return fmt.Sprintf("%s_%d", id.Kind, id.N)
}

// GroupID identifies a group for the lifetime of the process.
type GroupID uint64

var (
	widgetCounters [kindCount]atomic.Uint64
	groupCounter   atomic.Uint64

	// itemSeq orders groups and widgets by creation for stable sorting.
	itemSeq atomic.Uint64
)

func nextWidgetID(k Kind) WidgetID {
	return WidgetID{Kind: k, N: widgetCounters[k].Add(1)}
}

func nextGroupID() GroupID {
	return GroupID(groupCounter.Add(1))
}

func nextSeq() uint64 {
	return itemSeq.Add(1)
}
