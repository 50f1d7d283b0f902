package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"hr-notification/internal/domain"
	"hr-notification/internal/errs"
)

const defaultExpiration = 24 * time.Hour

// Claims 会话载荷，标识当前登录的接收者
type Claims struct {
	jwt.RegisteredClaims
	ReceiverID   string `json:"receiverId"`
	ReceiverType string `json:"receiverType"`
}

type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Generate 为接收者签发token
func (s *TokenService) Generate(receiver domain.Receiver) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(defaultExpiration)),
		},
		ReceiverID:   receiver.ID,
		ReceiverType: receiver.Type.String(),
	})
	return token.SignedString(s.secret)
}

// Parse 校验token并还原接收者身份
func (s *TokenService) Parse(tokenStr string) (domain.Receiver, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: 非预期的签名算法 %v", errs.ErrUnauthorized, token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return domain.Receiver{}, fmt.Errorf("%w: %v", errs.ErrUnauthorized, err)
	}
	if !token.Valid {
		return domain.Receiver{}, fmt.Errorf("%w: token无效", errs.ErrUnauthorized)
	}

	receiverType := domain.ReceiverType(claims.ReceiverType)
	if !receiverType.IsValid() || claims.ReceiverID == "" {
		return domain.Receiver{}, fmt.Errorf("%w: 接收者身份不完整", errs.ErrUnauthorized)
	}
	return domain.Receiver{ID: claims.ReceiverID, Type: receiverType}, nil
}
