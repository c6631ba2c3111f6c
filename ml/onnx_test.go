package ml

import (
	"os"
	"testing"
)

// TestONNXModelPredict exercises the real inference path. It needs the
// trained artifact and the ONNX Runtime shared library, neither of which is
// checked in, so the test is skipped unless both are pointed at via env vars.
func TestONNXModelPredict(t *testing.T) {
	modelPath := os.Getenv("CARDIOSCREEN_MODEL")
	libPath := os.Getenv("CARDIOSCREEN_ORT_LIB")
	if modelPath == "" {
		t.Skip("CARDIOSCREEN_MODEL not set; skipping artifact test")
	}

	model, err := LoadModel("onnx", modelPath, libPath)
	if err != nil {
		t.Fatalf("failed to load model: %v", err)
	}
	defer model.Close()

	vector := FeatureVector(validFeatures())

	class1, prob1, err := model.Predict(vector)
	if err != nil {
		t.Fatalf("predict failed: %v", err)
	}
	if class1 != 0 && class1 != 1 {
		t.Fatalf("class out of range: %d", class1)
	}
	if prob1 < 0 || prob1 > 1 {
		t.Fatalf("probability out of range: %g", prob1)
	}

	// Same vector, same artifact: the prediction must be deterministic.
	class2, prob2, err := model.Predict(vector)
	if err != nil {
		t.Fatalf("second predict failed: %v", err)
	}
	if class1 != class2 || prob1 != prob2 {
		t.Fatalf("non-deterministic prediction: (%d, %g) vs (%d, %g)", class1, prob1, class2, prob2)
	}
}

func TestONNXModelRejectsWrongArity(t *testing.T) {
	m := &onnxModel{}
	if _, _, err := m.Predict([]float64{1, 2, 3}); err == nil {
		t.Fatal("expected arity error")
	}
}

func TestLoadModelUnsupportedType(t *testing.T) {
	if _, err := LoadModel("joblib", "model.pkl", ""); err == nil {
		t.Fatal("expected error for unsupported model type")
	}
}
