package primitives

// Component is the capability every primitive and every pipeline exposes:
// a pure, pairwise-invertible (where applicable) transform over a
// fixed-width bit string.
type Component interface {
	Encrypt(src Bits) (Bits, error)
	Decrypt(src Bits) (Bits, error)
}

// Order selects how a Pipeline decrypts: NATURAL reverses the component
// order, ORIGINAL keeps the forward order; in both cases each component
// applies its own Decrypt. The DES round function is built in ORIGINAL
// order: it is a pipeline of operations, none of which individually
// inverts the Feistel half, and DES never calls Decrypt on it -- it
// decrypts by running the same round pipeline's Encrypt with the round
// keys in reverse order.
type Order int

const (
	NATURAL Order = iota
	ORIGINAL
)

// Pipeline chains components so that one's output feeds the next's input.
// A Pipeline is itself a Component.
type Pipeline struct {
	components []Component
	order      Order
}

// NewPipeline builds a sequential pipeline over the given components.
func NewPipeline(order Order, components ...Component) *Pipeline {
	return &Pipeline{components: components, order: order}
}

// Encrypt applies every component in forward order.
func (p *Pipeline) Encrypt(src Bits) (Bits, error) {
	cur := src
	for _, c := range p.components {
		var err error
		cur, err = c.Encrypt(cur)
		if err != nil {
			return Bits{}, err
		}
	}
	return cur, nil
}

// Decrypt applies the components in reverse order (NATURAL) or forward
// order (ORIGINAL), invoking each component's own Decrypt.
func (p *Pipeline) Decrypt(src Bits) (Bits, error) {
	cur := src
	if p.order == ORIGINAL {
		for _, c := range p.components {
			var err error
			cur, err = c.Decrypt(cur)
			if err != nil {
				return Bits{}, err
			}
		}
		return cur, nil
	}
	for i := len(p.components) - 1; i >= 0; i-- {
		var err error
		cur, err = p.components[i].Decrypt(cur)
		if err != nil {
			return Bits{}, err
		}
	}
	return cur, nil
}

// HorizontalPipeline splits its input into len(components) equal-width
// segments, runs the i-th component over the i-th segment, and concatenates
// the results. DES uses this for its 8-S-box stage: 48 bits in, 32 bits
// out, 6-bit segments in mapped to 4-bit segments out.
type HorizontalPipeline struct {
	components  []Component
	inputWidth  int
	outputWidth int
	inChunk     int
	outChunk    int
}

// NewHorizontalPipeline builds a HorizontalPipeline over equal-width
// segments of inputWidth bits, producing outputWidth bits (defaults to
// inputWidth when outputWidth is 0).
func NewHorizontalPipeline(components []Component, inputWidth, outputWidth int) *HorizontalPipeline {
	if outputWidth == 0 {
		outputWidth = inputWidth
	}
	return &HorizontalPipeline{
		components:  components,
		inputWidth:  inputWidth,
		outputWidth: outputWidth,
		inChunk:     inputWidth / len(components),
		outChunk:    outputWidth / len(components),
	}
}

// Encrypt splits src into segments and applies each component to its own
// segment, concatenating the results.
func (h *HorizontalPipeline) Encrypt(src Bits) (Bits, error) {
	if src.Width() != h.inputWidth {
		return Bits{}, &SizeMismatchError{Component: "HorizontalPipeline", Want: h.inputWidth, Got: src.Width()}
	}
	chunks := nArySplit(src, h.inChunk, len(h.components))
	out := make([]Bits, len(h.components))
	for i, c := range h.components {
		var err error
		out[i], err = c.Encrypt(chunks[i])
		if err != nil {
			return Bits{}, err
		}
	}
	return nAryJoin(out), nil
}

// Decrypt splits src into output-width segments and applies each
// component's own Decrypt, concatenating the results back to the input
// width.
func (h *HorizontalPipeline) Decrypt(src Bits) (Bits, error) {
	if src.Width() != h.outputWidth {
		return Bits{}, &SizeMismatchError{Component: "HorizontalPipeline", Want: h.outputWidth, Got: src.Width()}
	}
	chunks := nArySplit(src, h.outChunk, len(h.components))
	out := make([]Bits, len(h.components))
	for i, c := range h.components {
		var err error
		out[i], err = c.Decrypt(chunks[i])
		if err != nil {
			return Bits{}, err
		}
	}
	return nAryJoin(out), nil
}
