package ml

import (
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// ortEnv manages global ONNX Runtime initialization (process-wide singleton).
var ortEnv struct {
	once sync.Once
	err  error
}

// initORT initializes the ONNX Runtime environment. Safe to call multiple
// times; only the first call has any effect.
func initORT(libPath string) error {
	ortEnv.once.Do(func() {
		if libPath != "" {
			ort.SetSharedLibraryPath(libPath)
		}
		ortEnv.err = ort.InitializeEnvironment()
	})
	return ortEnv.err
}

// onnxModel wraps an inference session over the exported ensemble graph.
// Sessions are not documented as concurrency-safe, so Run is serialized.
type onnxModel struct {
	mu         sync.Mutex
	session    *ort.DynamicAdvancedSession
	inputName  string
	outputName string
	numClasses int64
}

// newONNXModel loads the serialized artifact and creates an inference
// session. The graph must take a single [batch, 13] float tensor and expose a
// [batch, 2] probability tensor; anything else is rejected at load time.
func newONNXModel(modelPath, libPath string) (*onnxModel, error) {
	if err := initORT(libPath); err != nil {
		return nil, fmt.Errorf("onnx: failed to initialize runtime: %w", err)
	}

	inputs, outputs, err := ort.GetInputOutputInfo(modelPath)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to read model info: %w", err)
	}

	if len(inputs) != 1 {
		return nil, fmt.Errorf("onnx: expected a single input tensor, got %d", len(inputs))
	}
	inDims := inputs[0].Dimensions
	if len(inDims) != 2 || inDims[1] != FeatureCount {
		return nil, fmt.Errorf("onnx: expected input shape [batch, %d], got %v", FeatureCount, inDims)
	}

	outputName, numClasses, err := findProbabilityOutput(outputs)
	if err != nil {
		return nil, err
	}

	opts, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create session options: %w", err)
	}
	defer opts.Destroy()
	opts.SetIntraOpNumThreads(2)
	opts.SetInterOpNumThreads(1)

	session, err := ort.NewDynamicAdvancedSession(
		modelPath,
		[]string{inputs[0].Name},
		[]string{outputName},
		opts,
	)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create session: %w", err)
	}

	return &onnxModel{
		session:    session,
		inputName:  inputs[0].Name,
		outputName: outputName,
		numClasses: numClasses,
	}, nil
}

// findProbabilityOutput locates the class-probability tensor among the graph
// outputs. Converted sklearn pipelines usually expose both a label and a
// probability output; the probability one is 2D with one column per class.
func findProbabilityOutput(outputs []ort.InputOutputInfo) (string, int64, error) {
	for _, out := range outputs {
		dims := out.Dimensions
		if len(dims) == 2 && dims[1] >= 2 {
			return out.Name, dims[1], nil
		}
	}
	return "", 0, fmt.Errorf("onnx: no [batch, classes] probability output found")
}

// Predict runs a single synchronous inference call for one feature vector and
// returns the predicted class with its probability of disease (class 1).
func (m *onnxModel) Predict(features []float64) (int, float64, error) {
	if len(features) != FeatureCount {
		return 0, 0, &ValidationError{
			Field:  "features",
			Reason: fmt.Sprintf("expected %d values, got %d", FeatureCount, len(features)),
		}
	}

	data := make([]float32, FeatureCount)
	for i, v := range features {
		data[i] = float32(v)
	}

	inShape := ort.NewShape(1, FeatureCount)
	tIn, err := ort.NewTensor(inShape, data)
	if err != nil {
		return 0, 0, fmt.Errorf("onnx: failed to create input tensor: %w", err)
	}
	defer tIn.Destroy()

	outShape := ort.NewShape(1, m.numClasses)
	tOut, err := ort.NewEmptyTensor[float32](outShape)
	if err != nil {
		return 0, 0, fmt.Errorf("onnx: failed to create output tensor: %w", err)
	}
	defer tOut.Destroy()

	m.mu.Lock()
	err = m.session.Run([]ort.Value{tIn}, []ort.Value{tOut})
	m.mu.Unlock()
	if err != nil {
		return 0, 0, fmt.Errorf("onnx: inference failed: %w", err)
	}

	probs := tOut.GetData()
	if len(probs) < 2 {
		return 0, 0, fmt.Errorf("onnx: probability output too short: %d", len(probs))
	}

	class := 0
	if probs[1] >= probs[0] {
		class = 1
	}
	return class, float64(probs[1]), nil
}

// Close releases the ONNX session resources.
func (m *onnxModel) Close() error {
	return m.session.Destroy()
}
