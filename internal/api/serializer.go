package api

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"github.com/ougirez/vaxboard/internal/pkg/constants"
)

// SonicSerializer swaps echo's JSON codec for sonic; snapshot payloads carry
// full regional geometry and are by far the largest responses the API sends.
type SonicSerializer struct{}

func NewSonicSerializer() *SonicSerializer {
	return &SonicSerializer{}
}

func (s *SonicSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := sonic.ConfigDefault.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (s *SonicSerializer) Deserialize(c echo.Context, i interface{}) error {
	if err := sonic.ConfigDefault.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return fmt.Errorf("decode body: %v: %w", err, constants.ErrBadRequest)
	}
	return nil
}
