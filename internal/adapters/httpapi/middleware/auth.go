package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"tailorspace/internal/core/access"
	actorPort "tailorspace/internal/ports/actor"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"message": message,
		"data":    nil,
		"status":  false,
	})
}

func forbidden(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"message": message,
		"data":    nil,
		"status":  false,
	})
}

// JWTAuth verifies the bearer token and resolves the acting principal: the
// user id from the token subject, plus the actor id and role when the user
// has an actor record.
func JWTAuth(jwtKey []byte, actors actorPort.ActorRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			unauthorized(c, "Unauthorized")
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims := &jwt.StandardClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return jwtKey, nil
		})
		if err != nil || !token.Valid {
			unauthorized(c, "Unauthorized")
			return
		}

		userID, err := strconv.ParseUint(claims.Subject, 10, 64)
		if err != nil || userID == 0 {
			unauthorized(c, "Unauthorized")
			return
		}

		p := access.Principal{UserID: uint(userID)}
		if a, err := actors.FindByUserID(c.Request.Context(), uint(userID)); err == nil && a != nil {
			p.ActorID = a.ID
			p.Role = access.Role(a.Role)
		}

		c.Set(principalKey, p)
		c.Next()
	}
}

// RequireActor gates routes open to any commercial actor.
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok || !p.HasActor() {
			forbidden(c, "Actor role required")
			return
		}
		c.Next()
	}
}

// RequireTailor gates tailor-only routes.
func RequireTailor() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok || !p.HasRole(access.RoleTailor) {
			forbidden(c, "Tailor role required")
			return
		}
		c.Next()
	}
}

func PrincipalFrom(c *gin.Context) (access.Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return access.Principal{}, false
	}
	p, ok := v.(access.Principal)
	return p, ok
}
