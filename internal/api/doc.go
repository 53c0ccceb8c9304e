// Package api 處理 HTTP 請求路由和處理。
//
// 這個包包含了所有的 HTTP 處理器（handlers）：房間的建立與登入、
// 行程列表的增刪改查、時間格線和費用結算的查詢。它負責將 HTTP
// 請求轉換為適當的服務調用，並將結果轉換回 HTTP 響應。
package api
