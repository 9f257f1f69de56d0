package device

import (
	"encoding/binary"
	"fmt"
	"sync"
	"unsafe"

	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/flint-ml/flint/internal/tensor"
)

// GPUContext drives WebGPU compute for GPU kernels. It owns the
// instance, adapter, device, and queue, plus a cache of compiled
// shaders and pipelines keyed by shader name.
type GPUContext struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	// Shader and pipeline cache
	shaders   map[string]*wgpu.ShaderModule
	pipelines map[string]*wgpu.ComputePipeline
	mu        sync.RWMutex

	// Device info
	adapterInfo *wgpu.AdapterInfoGo
}

// NewGPUContext initializes WebGPU and returns a ready context.
// Returns an error if WebGPU is not available or initialization fails.
func NewGPUContext() (ctx *GPUContext, err error) {
	// Recover from panic if the wgpu native library is not found.
	defer func() {
		if r := recover(); r != nil {
			ctx = nil
			err = fmt.Errorf("device: webgpu native library not available: %v", r)
		}
	}()

	instance, instErr := wgpu.CreateInstance(nil)
	if instErr != nil {
		return nil, fmt.Errorf("device: failed to create instance: %w", instErr)
	}

	adapter, adapterErr := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if adapterErr != nil {
		instance.Release()
		return nil, fmt.Errorf("device: failed to request adapter: %w", adapterErr)
	}

	// Note: adapterInfo may be nil if GetInfo fails, which is OK.
	adapterInfo, _ := adapter.GetInfo()

	dev, devErr := adapter.RequestDevice(nil)
	if devErr != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("device: failed to request device: %w", devErr)
	}

	queue := dev.GetQueue()
	if queue == nil {
		dev.Release()
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("device: failed to get queue")
	}

	return &GPUContext{
		instance:    instance,
		adapter:     adapter,
		device:      dev,
		queue:       queue,
		shaders:     make(map[string]*wgpu.ShaderModule),
		pipelines:   make(map[string]*wgpu.ComputePipeline),
		adapterInfo: adapterInfo,
	}, nil
}

// Available reports whether a WebGPU adapter can be acquired.
func Available() (available bool) {
	// Recover from panic if the wgpu native library is not found.
	defer func() {
		if r := recover(); r != nil {
			available = false
		}
	}()

	instance, err := wgpu.CreateInstance(nil)
	if err != nil {
		return false
	}
	defer instance.Release()

	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		return false
	}
	adapter.Release()

	return true
}

// Backend returns tensor.GPU.
func (g *GPUContext) Backend() tensor.Backend { return tensor.GPU }

// String returns a human-readable description of the context.
func (g *GPUContext) String() string {
	if g.adapterInfo != nil {
		return fmt.Sprintf("GPU (%s)", g.adapterInfo.Device)
	}
	return "GPU (WebGPU)"
}

// Release frees all WebGPU resources. The context must not be used
// afterwards.
func (g *GPUContext) Release() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, p := range g.pipelines {
		p.Release()
	}
	g.pipelines = nil

	for _, s := range g.shaders {
		s.Release()
	}
	g.shaders = nil

	if g.queue != nil {
		g.queue.Release()
		g.queue = nil
	}
	if g.device != nil {
		g.device.Release()
		g.device = nil
	}
	if g.adapter != nil {
		g.adapter.Release()
		g.adapter = nil
	}
	if g.instance != nil {
		g.instance.Release()
		g.instance = nil
	}
}

// compileShader returns a cached ShaderModule or compiles a new one.
func (g *GPUContext) compileShader(name, code string) *wgpu.ShaderModule {
	g.mu.RLock()
	if shader, exists := g.shaders[name]; exists {
		g.mu.RUnlock()
		return shader
	}
	g.mu.RUnlock()

	shader := g.device.CreateShaderModuleWGSL(code)

	g.mu.Lock()
	g.shaders[name] = shader
	g.mu.Unlock()

	return shader
}

// getOrCreatePipeline returns a cached ComputePipeline or creates a new one.
func (g *GPUContext) getOrCreatePipeline(name string, shader *wgpu.ShaderModule) *wgpu.ComputePipeline {
	g.mu.RLock()
	if pipeline, exists := g.pipelines[name]; exists {
		g.mu.RUnlock()
		return pipeline
	}
	g.mu.RUnlock()

	// Auto layout (nil) derives bindings from the shader.
	pipeline := g.device.CreateComputePipelineSimple(nil, shader, "main")

	g.mu.Lock()
	g.pipelines[name] = pipeline
	g.mu.Unlock()

	return pipeline
}

// createBuffer creates a GPU buffer and uploads initial data.
func (g *GPUContext) createBuffer(data []byte, usage wgpu.BufferUsage) *wgpu.Buffer {
	size := uint64(len(data))

	buffer := g.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            usage,
		Size:             size,
		MappedAtCreation: wgpu.True,
	})

	mappedPtr := buffer.GetMappedRange(0, size)
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)
	copy(mappedSlice, data)
	buffer.Unmap()

	return buffer
}

// createUniformBuffer creates a uniform buffer with proper alignment.
// Uniform buffers require 16-byte alignment for struct fields.
func (g *GPUContext) createUniformBuffer(data []byte) *wgpu.Buffer {
	size := uint64(len(data))
	alignedSize := (size + 15) &^ 15 // Round up to 16-byte boundary

	buffer := g.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		Size:             alignedSize,
		MappedAtCreation: wgpu.True,
	})

	mappedPtr := buffer.GetMappedRange(0, alignedSize)
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), alignedSize)
	copy(mappedSlice, data)
	buffer.Unmap()

	return buffer
}

// readBuffer reads data back from a GPU buffer to CPU memory.
// Uses a staging buffer since storage buffers can't be mapped directly.
func (g *GPUContext) readBuffer(srcBuffer *wgpu.Buffer, size uint64) ([]byte, error) {
	stagingBuffer := g.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
		Size:  size,
	})
	defer stagingBuffer.Release()

	encoder := g.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(srcBuffer, 0, stagingBuffer, 0, size)
	cmdBuffer := encoder.Finish(nil)
	g.queue.Submit(cmdBuffer)

	err := stagingBuffer.MapAsync(g.device, wgpu.MapModeRead, 0, size)
	if err != nil {
		return nil, fmt.Errorf("device: failed to map staging buffer: %w", err)
	}

	mappedPtr := stagingBuffer.GetMappedRange(0, size)
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)
	result := make([]byte, size)
	copy(result, mappedSlice)

	stagingBuffer.Unmap()

	return result, nil
}

// Dispatch1D runs the named compute shader over n elements and returns
// the result buffer's contents. Each input becomes a read-only storage
// buffer bound in order; the result storage buffer follows at binding
// len(inputs), and a uniform params block sits last. A nil params
// defaults to the element count as a single u32.
func (g *GPUContext) Dispatch1D(name, code string, n int, inputs [][]byte, outSize int, params []byte) ([]byte, error) {
	shader := g.compileShader(name, code)
	pipeline := g.getOrCreatePipeline(name, shader)

	inputBufs := make([]*wgpu.Buffer, len(inputs))
	for i, data := range inputs {
		inputBufs[i] = g.createBuffer(data, wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	}
	defer func() {
		for _, buf := range inputBufs {
			buf.Release()
		}
	}()

	resultBuf := g.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		Size:  uint64(outSize),
	})
	defer resultBuf.Release()

	if params == nil {
		params = make([]byte, 4)
		binary.LittleEndian.PutUint32(params, uint32(n))
	}
	alignedParamsSize := (uint64(len(params)) + 15) &^ 15
	paramsBuf := g.createUniformBuffer(params)
	defer paramsBuf.Release()

	entries := make([]wgpu.BindGroupEntry, 0, len(inputBufs)+2)
	for i, buf := range inputBufs {
		entries = append(entries, wgpu.BufferBindingEntry(uint32(i), buf, 0, uint64(len(inputs[i]))))
	}
	entries = append(entries, wgpu.BufferBindingEntry(uint32(len(inputBufs)), resultBuf, 0, uint64(outSize)))
	entries = append(entries, wgpu.BufferBindingEntry(uint32(len(inputBufs))+1, paramsBuf, 0, alignedParamsSize))

	bindGroupLayout := pipeline.GetBindGroupLayout(0)
	bindGroup := g.device.CreateBindGroupSimple(bindGroupLayout, entries)
	defer bindGroup.Release()

	encoder := g.device.CreateCommandEncoder(nil)
	computePass := encoder.BeginComputePass(nil)
	computePass.SetPipeline(pipeline)
	computePass.SetBindGroup(0, bindGroup, nil)

	workgroups := uint32((n + workgroupSize - 1) / workgroupSize)
	computePass.DispatchWorkgroups(workgroups, 1, 1)
	computePass.End()

	cmdBuffer := encoder.Finish(nil)
	g.queue.Submit(cmdBuffer)

	return g.readBuffer(resultBuf, uint64(outSize))
}
