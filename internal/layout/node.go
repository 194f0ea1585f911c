package layout

import "github.com/ytget/cooking/internal/model"

// Kind classifies a region
type Kind string

const (
	KindScreen     Kind = "screen"
	KindContent    Kind = "content"
	KindHeader     Kind = "header"
	KindImage      Kind = "image"
	KindGradient   Kind = "gradient"
	KindChip       Kind = "chip"
	KindText       Kind = "text"
	KindShadow     Kind = "shadow"
	KindRow        Kind = "row"
	KindButton     Kind = "button"
	KindIconButton Kind = "icon_button"
	KindCard       Kind = "card"
	KindCarousel   Kind = "carousel"
)

// Rect is a frame relative to the parent node
type Rect struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	W float32 `json:"w"`
	H float32 `json:"h"`
}

// Bottom returns Y+H
func (r Rect) Bottom() float32 {
	return r.Y + r.H
}

// Size is a width/height pair
type Size struct {
	W float32 `json:"w"`
	H float32 `json:"h"`
}

// Node is one region of the screen
type Node struct {
	ID        string         `json:"id"`
	Kind      Kind           `json:"kind"`
	Frame     Rect           `json:"frame"`
	Opacity   float32        `json:"opacity"`
	Scale     float32        `json:"scale"`
	Elevation float32        `json:"elevation,omitempty"`
	Text      string         `json:"text,omitempty"`
	Image     model.AssetRef `json:"image,omitempty"`
	Children  []*Node        `json:"children,omitempty"`
}

func newNode(id string, kind Kind, frame Rect) *Node {
	return &Node{ID: id, Kind: kind, Frame: frame, Opacity: 1, Scale: 1}
}

func (n *Node) add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Find returns the first node with the given ID in depth-first order
func (n *Node) Find(id string) *Node {
	if n == nil {
		return nil
	}
	if n.ID == id {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the children of that node.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
