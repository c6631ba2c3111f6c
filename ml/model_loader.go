package ml

import (
	"errors"
)

func LoadModel(modelType, path, ortLibPath string) (Model, error) {
	switch modelType {
	case "onnx":
		return newONNXModel(path, ortLibPath)
	default:
		return nil, errors.New("unsupported model type")
	}
}
