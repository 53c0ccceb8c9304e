// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 目前只有一個身份驗證中間件：驗證請求帶的 JWT token，
// 並把 token 裡記的「目前所在房間」放進請求上下文。
package middleware
