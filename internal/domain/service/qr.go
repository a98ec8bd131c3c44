package service

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/fogleman/gg"
	"github.com/google/uuid"

	"github.com/graphowls/graphowls-qr/internal/domain/common/errorz"
	"github.com/graphowls/graphowls-qr/pkg/logger/types"
	qr "github.com/graphowls/graphowls-qr/pkg/qrcode"
)

// Assets are the logo files, one per module style.
type Assets struct {
	RoundedLogo string
	SquareLogo  string
}

// QrRequest is a single generation: the URL and the two style toggles.
type QrRequest struct {
	URL     string
	Mask    bool // gradient towards the mask accent instead of solid black
	Rounded bool // rounded modules and the rounded logo
}

type QrService struct {
	style  qr.Style
	assets Assets
	drawer qr.ModuleDrawer
	verify bool
	logger *types.Logger
}

// NewQrService creates the generator. A non-nil drawer replaces the one picked by QrRequest.Rounded.
func NewQrService(style qr.Style, assets Assets, drawer qr.ModuleDrawer, verify bool, logger *types.Logger) *QrService {
	return &QrService{
		style:  style,
		assets: assets,
		drawer: drawer,
		verify: verify,
		logger: logger,
	}
}

func (s *QrService) Generate(ctx context.Context, req QrRequest) (*image.RGBA, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var drawer qr.ModuleDrawer = qr.GappedSquare{}
	logoPath := s.assets.SquareLogo
	if req.Rounded {
		drawer = qr.Rounded{}
		logoPath = s.assets.RoundedLogo
	}
	if s.drawer != nil {
		drawer = s.drawer
	}

	logo, err := qr.LoadLogo(logoPath)
	if err != nil {
		return nil, err
	}
	s.logger.Debugf("Loaded logo %s", logoPath)

	img, err := qr.Styled(req.URL, s.style, qr.StyledOptions{
		ModuleDrawer: drawer,
		Gradient:     req.Mask,
		Logo:         logo,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Debugf("Rendered %dx%d code (mask: %v, rounded: %v)", img.Bounds().Dx(), img.Bounds().Dy(), req.Mask, req.Rounded)

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	if s.verify {
		text, err := qr.Decode(img)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errorz.Unreadable, err)
		}
		// byte content that is not UTF-8 comes back re-encoded, only a successful decode is checked
		if utf8.ValidString(req.URL) && text != req.URL {
			return nil, fmt.Errorf("%w: got %q", errorz.Unreadable, text)
		}
		s.logger.Debug("Verified generated code")
	}

	return img, nil
}

// GenerateFile generates the code and writes it as PNG to path, replacing any existing file.
func (s *QrService) GenerateFile(ctx context.Context, req QrRequest, path string) error {
	img, err := s.Generate(ctx, req)
	if err != nil {
		return err
	}

	if err = ctx.Err(); err != nil {
		return err
	}

	if err = writePNG(path, img); err != nil {
		return err
	}
	s.logger.Infof("QR code for %s saved to %s", req.URL, path)
	return nil
}

// writePNG writes through a temporary file in the target directory so a failed
// write never leaves a truncated image behind.
func writePNG(path string, img image.Image) error {
	dir := filepath.Dir(path)
	if err := ensureDir(dir); err != nil {
		return err
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.New().String()))
	if err := gg.SavePNG(tmp, img); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func ensureDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err = os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	return nil
}
