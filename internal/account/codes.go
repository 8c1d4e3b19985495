package account

import (
	"github.com/google/uuid"

	"github.com/joao-fontenele/storefront-core/internal/domain"
)

// UUIDCodeGenerator issues random one-time codes. Codes are opaque; no
// expiry or uniqueness tracking happens at this layer.
type UUIDCodeGenerator struct{}

func NewUUIDCodeGenerator() *UUIDCodeGenerator {
	return &UUIDCodeGenerator{}
}

func (*UUIDCodeGenerator) Generate() domain.OneTimeCode {
	return domain.OneTimeCode(uuid.NewString())
}

var _ CodeGenerator = (*UUIDCodeGenerator)(nil)
