package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
)

// omitID renders a record without its id, the shape profile responses use.
func omitID(v interface{}) gin.H {
	data, err := json.Marshal(v)
	if err != nil {
		return gin.H{}
	}

	var m gin.H
	if err := json.Unmarshal(data, &m); err != nil {
		return gin.H{}
	}

	delete(m, "id")
	return m
}
