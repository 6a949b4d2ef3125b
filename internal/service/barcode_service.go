package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"inventory-service/internal/ean13"
	"inventory-service/internal/model"

	"gorm.io/gorm"
)

// ErrInvalidBarcode is returned when a manually supplied code fails EAN-13
// validation.
var ErrInvalidBarcode = errors.New("invalid EAN-13 barcode")

// BarcodeService issues and manages EAN-13 barcodes. All issued codes share a
// fixed manufacturer prefix; the remaining payload digits carry a sequence
// number so consecutive allocations produce consecutive codes.
type BarcodeService struct {
	db     *gorm.DB
	prefix string
}

func NewBarcodeService(db *gorm.DB, prefix string) *BarcodeService {
	return &BarcodeService{db: db, prefix: prefix}
}

// Generate creates up to count new free barcodes, continuing the sequence
// after the highest code already issued under the prefix. Codes that already
// exist are skipped without renumbering the rest of the batch, so the result
// may be shorter than count. Each barcode is committed independently; a
// persistence failure aborts the remainder of the batch but keeps the rows
// created so far.
func (s *BarcodeService) Generate(ctx context.Context, count int) ([]model.Barcode, error) {
	codes := []model.Barcode{}
	if count <= 0 {
		return codes, nil
	}

	start, err := s.nextSequence(ctx)
	if err != nil {
		return nil, err
	}

	width := ean13.PayloadLength - len(s.prefix)
	for i := start; i < start+count; i++ {
		payload := s.prefix + fmt.Sprintf("%0*d", width, i)
		if len(payload) > ean13.PayloadLength {
			payload = payload[:ean13.PayloadLength]
		}

		code, err := ean13.Encode(payload)
		if err != nil {
			return codes, fmt.Errorf("encode barcode %q: %w", payload, err)
		}

		var existing int64
		if err := s.db.WithContext(ctx).Model(&model.Barcode{}).Where("code = ?", code).Count(&existing).Error; err != nil {
			return codes, fmt.Errorf("check barcode %s: %w", code, err)
		}
		if existing > 0 {
			continue
		}

		barcode := model.Barcode{
			Code:     code,
			ImageURL: ImageURL(code),
			Status:   model.BarcodeStatusFree,
		}
		if err := s.db.WithContext(ctx).Create(&barcode).Error; err != nil {
			// A concurrent allocation may have taken this code between the
			// existence check and the insert; the unique index is the final
			// arbiter and a collision just means skip.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			return codes, fmt.Errorf("create barcode %s: %w", code, err)
		}
		codes = append(codes, barcode)
	}

	return codes, nil
}

// nextSequence reads the highest code issued under the prefix and returns the
// sequence number that follows it, or 0 when none exist yet.
func (s *BarcodeService) nextSequence(ctx context.Context) (int, error) {
	var last model.Barcode
	err := s.db.WithContext(ctx).
		Where("code LIKE ?", s.prefix+"%").
		Order("code DESC").
		First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read last barcode: %w", err)
	}

	seq, err := strconv.Atoi(last.Code[len(s.prefix):ean13.PayloadLength])
	if err != nil {
		return 0, nil
	}
	return seq + 1, nil
}

// Create registers a single externally chosen code as a free barcode.
func (s *BarcodeService) Create(ctx context.Context, code, imageURL string) (*model.Barcode, error) {
	if !ean13.Validate(code) {
		return nil, ErrInvalidBarcode
	}

	var existing int64
	if err := s.db.WithContext(ctx).Model(&model.Barcode{}).Where("code = ?", code).Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("check barcode %s: %w", code, err)
	}
	if existing > 0 {
		return nil, ErrDuplicateBarcode
	}

	if imageURL == "" {
		imageURL = ImageURL(code)
	}
	barcode := model.Barcode{
		Code:     code,
		ImageURL: imageURL,
		Status:   model.BarcodeStatusFree,
	}
	if err := s.db.WithContext(ctx).Create(&barcode).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateBarcode
		}
		return nil, fmt.Errorf("create barcode %s: %w", code, err)
	}
	return &barcode, nil
}

// List returns one page of barcodes, newest first, and the total row count.
func (s *BarcodeService) List(ctx context.Context, page, limit int) ([]model.Barcode, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Barcode{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count barcodes: %w", err)
	}

	var barcodes []model.Barcode
	err := s.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&barcodes).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list barcodes: %w", err)
	}
	return barcodes, total, nil
}

// Get returns one barcode by its row ID.
func (s *BarcodeService) Get(ctx context.Context, id uint) (*model.Barcode, error) {
	var barcode model.Barcode
	err := s.db.WithContext(ctx).First(&barcode, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBarcodeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get barcode %d: %w", id, err)
	}
	return &barcode, nil
}

// Delete removes a barcode that has never been bound. Bound barcodes belong
// to a product and are refused.
func (s *BarcodeService) Delete(ctx context.Context, id uint) error {
	barcode, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if barcode.Status == model.BarcodeStatusBound {
		return ErrBarcodeInUse
	}
	if err := s.db.WithContext(ctx).Delete(barcode).Error; err != nil {
		return fmt.Errorf("delete barcode %d: %w", id, err)
	}
	return nil
}

// ImageURL returns the rendering URL stored alongside a generated code.
func ImageURL(code string) string {
	return fmt.Sprintf("https://barcode.tec-it.com/barcode.ashx?data=%s&code=EAN13", code)
}
