package canvas

// KeyName identifies a non-printable key.
type KeyName string

const (
	KeyBackspace KeyName = "BackSpace"
	KeyDelete    KeyName = "Delete"
	KeyLeft      KeyName = "Left"
	KeyRight     KeyName = "Right"
	KeyHome      KeyName = "Home"
	KeyEnd       KeyName = "End"
	KeyEscape    KeyName = "Escape"
	KeyReturn    KeyName = "Return"
)

// Key is one key press: either a named key or a printable rune.
type Key struct {
	Name KeyName
	Rune rune
}

// RuneKey is the press of a printable character.
func RuneKey(r rune) Key { return Key{Rune: r} }

// NamedKey is the press of a non-printable key.
func NamedKey(n KeyName) Key { return Key{Name: n} }

// Key handles a key press. While text is pending keys edit it; otherwise
// Delete and BackSpace remove the selection and Escape cancels the
// polygon being built or clears the selection.
func (c *Controller) Key(k Key) {
	if c.text != nil {
		c.typeKey(k)
		return
	}
	switch k.Name {
	case KeyDelete, KeyBackspace:
		c.DeleteSelected()
	case KeyEscape:
		if c.polygon != nil {
			c.CancelPolygon()
			return
		}
		c.sel.Clear()
	}
}

func (c *Controller) typeKey(k Key) {
	t := c.text
	switch k.Name {
	case KeyBackspace:
		if c.cursor > 0 {
			t.RemoveChar(c.cursor - 1)
			c.cursor--
		}
	case KeyDelete:
		t.RemoveChar(c.cursor)
	case KeyLeft:
		c.cursor = max(c.cursor-1, 0)
	case KeyRight:
		c.cursor = min(c.cursor+1, t.Len())
	case KeyHome:
		c.cursor = 0
	case KeyEnd:
		c.cursor = t.Len()
	case KeyEscape, KeyReturn:
		c.CommitText()
		return
	case "":
		if k.Rune < ' ' {
			return
		}
		t.AddChar(string(k.Rune), c.cursor)
		c.cursor++
	default:
		return
	}
	c.drawTextBox()
}
