package rope

import "io"

// Reader returns an io.Reader over r's bytes, starting at offset 0.
func (r Rope) Reader() io.Reader {
	return &ropeReader{r: r}
}

type ropeReader struct {
	r      Rope
	cursor int
}

func (rr *ropeReader) Read(p []byte) (n int, err error) {
	total := rr.r.Len()
	if rr.cursor >= total {
		return 0, io.EOF
	}
	sub, err := rr.r.SubRope(rr.cursor, min(rr.cursor+len(p), total))
	if err != nil {
		return 0, err
	}
	s := sub.String()
	n = copy(p, s)
	rr.cursor += n
	return n, nil
}
