package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
)

// Claims 的 RoomID 就是「目前所在房間」的指標：
// 登入發 token 等於 setCurrentRoomId，中介層解出來等於 getCurrentRoomId
type Claims struct {
	RoomID string `json:"room_id"`
	jwt.StandardClaims
}

// GenerateToken 為登入成功的房間簽發一個新的 JWT token
func GenerateToken(roomID string, secret []byte, expire time.Duration) (string, error) {
	nowTime := time.Now()
	expireTime := nowTime.Add(expire)

	claims := Claims{
		RoomID: roomID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expireTime.Unix(),
			IssuedAt:  nowTime.Unix(),
		},
	}

	tokenClaims := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tokenClaims.SignedString(secret)
}

// ParseToken 解析和驗證 JWT token
func ParseToken(token string, secret []byte) (*Claims, error) {
	tokenClaims, err := jwt.ParseWithClaims(token, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})

	if tokenClaims != nil {
		if claims, ok := tokenClaims.Claims.(*Claims); ok && tokenClaims.Valid {
			return claims, nil
		}
	}

	return nil, err
}
