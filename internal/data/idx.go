package data

import (
	"compress/gzip"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// IDX magic numbers.
const (
	idxImagesMagic = 2051 // 0x00000803
	idxLabelsMagic = 2049 // 0x00000801
)

// ErrBadMagic is returned when an IDX header does not match the expected
// file kind.
var ErrBadMagic = errors.New("invalid IDX magic number")

// idxImages is a decoded IDX image file.
type idxImages struct {
	count, rows, cols int
	pixels            []byte // count*rows*cols bytes, row-major
}

// openIDX opens path, falling back to path+".gz" when the plain file does
// not exist. The returned reader decompresses transparently.
func openIDX(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	gz, gzErr := os.Open(path + ".gz")
	if gzErr != nil {
		// Report the plain path; it is the one users expect.
		return nil, err
	}
	zr, gzErr := gzip.NewReader(gz)
	if gzErr != nil {
		gz.Close()
		return nil, fmt.Errorf("%s.gz: %w", path, gzErr)
	}
	return &gzipFile{Reader: zr, file: gz}, nil
}

type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	zerr := g.Reader.Close()
	if err := g.file.Close(); err != nil {
		return err
	}
	return zerr
}

// readIDXImages reads an MNIST image file in IDX format.
//
// IDX file format for images:
//
//	magic number: 0x00000803 (2051)
//	number of images: 4 bytes
//	number of rows: 4 bytes (28)
//	number of cols: 4 bytes (28)
//	pixel data: unsigned bytes (0-255)
func readIDXImages(r io.Reader) (*idxImages, error) {
	var header [4]uint32
	if err := binary.Read(r, binary.BigEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if header[0] != idxImagesMagic {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrBadMagic, header[0], idxImagesMagic)
	}

	img := &idxImages{count: int(header[1]), rows: int(header[2]), cols: int(header[3])}
	img.pixels = make([]byte, img.count*img.rows*img.cols)
	if _, err := io.ReadFull(r, img.pixels); err != nil {
		return nil, fmt.Errorf("failed to read %d images: %w", img.count, err)
	}
	return img, nil
}

// readIDXLabels reads an MNIST label file in IDX format.
//
// IDX file format for labels:
//
//	magic number: 0x00000801 (2049)
//	number of labels: 4 bytes
//	label data: unsigned bytes (0-9)
func readIDXLabels(r io.Reader) ([]byte, error) {
	var header [2]uint32
	if err := binary.Read(r, binary.BigEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if header[0] != idxLabelsMagic {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrBadMagic, header[0], idxLabelsMagic)
	}

	labels := make([]byte, header[1])
	if _, err := io.ReadFull(r, labels); err != nil {
		return nil, fmt.Errorf("failed to read labels: %w", err)
	}
	return labels, nil
}

func readIDXImagesFile(path string) (*idxImages, error) {
	f, err := openIDX(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readIDXImages(f)
}

func readIDXLabelsFile(path string) ([]byte, error) {
	f, err := openIDX(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readIDXLabels(f)
}
