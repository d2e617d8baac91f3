package chart

// PaintOrder returns the layer names to paint, bottom first:
// frames of the B codes, the B codes, frames of the A codes, the A codes.
// Duplicates are kept.
func (c *Chart) PaintOrder(frames FrameTable) []string {
	a, b := c.Codes()

	order := make([]string, 0, 2*(len(a)+len(b)))
	order = appendFrames(order, b, frames)
	order = append(order, b...)
	order = appendFrames(order, a, frames)
	order = append(order, a...)
	return order
}

func appendFrames(dst, codes []string, frames FrameTable) []string {
	for _, code := range codes {
		if f, ok := frames.Frame(code); ok {
			dst = append(dst, f)
		}
	}
	return dst
}
