package commands

import (
	_ "embed"
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/oliverbestmann/vecmesh/mesh"
	"github.com/oliverbestmann/vecmesh/orion"
	"github.com/oliverbestmann/vecmesh/pulse"
	"github.com/oliverbestmann/webgpu/wgpu"
)

//go:embed mesh.wgsl
var meshShaderCode string

type MeshCommandOptions struct {
	// format and sample count of the target the pipeline is prepared for
	TargetFormat      wgpu.TextureFormat
	TargetSampleCount uint32

	// uses orion.BlendStateDefault if nil
	BlendState *wgpu.BlendState
}

// MeshCommand draws all meshes of the mesh.Store with one indexed draw call per mesh.
// Vertex and index data of all meshes are uploaded once per frame into shared buffers.
type MeshCommand struct {
	ctx *pulse.Context

	pipelineCache *pulse.PipelineCache[meshPipelineConfig]
	blendState    wgpu.BlendState

	compositor mesh.Compositor
	records    []mesh.Record

	// batch of the current frame, nil if there is nothing to draw
	batch *mesh.Batch

	bufVertices  *pulse.DynamicBuffer
	bufIndices   *pulse.DynamicBuffer
	bufTransform *wgpu.Buffer

	pipeline pulse.CachedPipeline

	// bind group for the current pipeline
	bindGroup         *wgpu.BindGroup
	bindGroupPipeline *wgpu.RenderPipeline
}

// NewMeshCommand creates the buffers and the render pipeline. An error
// building the pipeline is returned to the caller.
func NewMeshCommand(ctx *pulse.Context, opts MeshCommandOptions) (*MeshCommand, error) {
	blendState := orion.BlendStateDefault
	if opts.BlendState != nil {
		blendState = *opts.BlendState
	}

	bufTransform := ctx.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Mesh.FrameTransform",
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		Size:  uint64(unsafe.Sizeof(mesh.FrameTransform{})),
	})

	c := &MeshCommand{
		ctx:           ctx,
		pipelineCache: pulse.NewPipelineCache[meshPipelineConfig](ctx),
		blendState:    blendState,
		bufVertices:   orion.RegisterWithGC(pulse.NewDynamicBuffer(ctx, "Mesh.Vertices", wgpu.BufferUsageVertex)),
		bufIndices:    orion.RegisterWithGC(pulse.NewDynamicBuffer(ctx, "Mesh.Indices", wgpu.BufferUsageIndex)),
		bufTransform:  bufTransform,
	}

	// build the pipeline now, so errors show up at startup
	_, err := c.pipelineCache.Get(c.pipelineConfig(opts.TargetFormat, opts.TargetSampleCount))
	if err != nil {
		c.Release()
		return nil, fmt.Errorf("create mesh pipeline: %w", err)
	}

	return c, nil
}

func (c *MeshCommand) pipelineConfig(format wgpu.TextureFormat, sampleCount uint32) meshPipelineConfig {
	return meshPipelineConfig{
		TargetFormat:      format,
		TargetSampleCount: sampleCount,
		BlendState:        c.blendState,
		ShaderSource:      meshShaderCode,
	}
}

// Prepare composites the meshes of the world and uploads them
// together with the frame transform.
func (c *MeshCommand) Prepare(frame *orion.Frame) error {
	c.batch = nil

	store, ok := orion.Fetch[*mesh.Store](frame.World)
	if !ok {
		return nil
	}

	var selector mesh.ActiveMesh
	if active, ok := orion.Fetch[*mesh.ActiveMesh](frame.World); ok {
		selector = *active
	}

	c.records = store.Records(c.records[:0])

	batch := c.compositor.Composite(c.records, selector)

	if batch.Changed {
		slog.Debug("Mesh batch changed",
			slog.Int("meshCount", len(batch.Ranges)),
			slog.Int("vertexCount", len(batch.Vertices)),
			slog.Int("indexCount", len(batch.Indices)),
		)
	}

	if batch.IsEmpty() {
		return nil
	}

	// values might have changed even if the counts did not, upload every frame
	c.bufVertices.Write(wgpu.ToBytes(batch.Vertices))
	c.bufIndices.Write(wgpu.ToBytes(batch.Indices))

	transform := mesh.NewFrameTransform(frame.Screen.Width, frame.Screen.Height, frame.Screen.Density)
	transformValues := transform.Raw()
	c.ctx.WriteBuffer(c.bufTransform, 0, pulse.AsByteSlice(&transformValues))

	pc, err := c.pipelineCache.Get(c.pipelineConfig(frame.Target.Format, frame.Target.SampleCount))
	if err != nil {
		return fmt.Errorf("get mesh pipeline: %w", err)
	}

	c.pipeline = pc
	c.updateBindGroup()

	c.batch = batch

	return nil
}

func (c *MeshCommand) updateBindGroup() {
	if c.bindGroup != nil && c.bindGroupPipeline == c.pipeline.Pipeline {
		return
	}

	if c.bindGroup != nil {
		c.bindGroup.Release()
	}

	c.bindGroup = c.ctx.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Mesh.BindGroup",
		Layout: c.pipeline.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  c.bufTransform,
				Size:    wgpu.WholeSize,
			},
		},
	})

	c.bindGroupPipeline = c.pipeline.Pipeline
}

// Draw records one indexed draw call per mesh. Nothing is recorded
// if there are no vertices.
func (c *MeshCommand) Draw(pass *wgpu.RenderPassEncoder) {
	batch := c.batch
	if batch == nil || batch.IsEmpty() || len(batch.Indices) == 0 {
		return
	}

	pass.SetPipeline(c.pipeline.Pipeline)
	pass.SetBindGroup(0, c.bindGroup, nil)
	pass.SetVertexBuffer(0, c.bufVertices.Buffer(), 0, wgpu.WholeSize)
	pass.SetIndexBuffer(c.bufIndices.Buffer(), wgpu.IndexFormatUint16, 0, wgpu.WholeSize)

	batch.Draw(func(indexCount, firstIndex uint32, baseVertex int32) {
		pass.DrawIndexed(indexCount, 1, firstIndex, baseVertex, 0)
	})
}

func (c *MeshCommand) Release() {
	c.batch = nil

	if c.bindGroup != nil {
		c.bindGroup.Release()
		c.bindGroup = nil
	}

	c.pipelineCache.Purge()
	c.pipeline = pulse.CachedPipeline{}

	c.bufVertices.Release()
	c.bufIndices.Release()

	if c.bufTransform != nil {
		c.bufTransform.Release()
		c.bufTransform = nil
	}
}

type meshPipelineConfig struct {
	TargetFormat      wgpu.TextureFormat
	BlendState        wgpu.BlendState
	TargetSampleCount uint32
	ShaderSource      string
}

func (conf meshPipelineConfig) Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error) {
	slog.Info(
		"Create RenderPipeline for meshes",
		slog.Any("config", conf.TargetFormat),
		slog.Any("sampleCount", conf.TargetSampleCount),
	)

	shader, err := dev.TryCreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:      "Mesh.ShaderSource",
		WGSLSource: &wgpu.ShaderSourceWGSL{Code: conf.ShaderSource},
	})
	if err != nil {
		return nil, fmt.Errorf("compile mesh shader: %w", err)
	}

	defer shader.Release()

	desc := &wgpu.RenderPipelineDescriptor{
		Label: fmt.Sprintf("Mesh.%s", conf.TargetFormat),
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: uint64(unsafe.Sizeof(mesh.GPUVertex{})),
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{
							// position
							Format:         wgpu.VertexFormatFloat32x2,
							Offset:         uint64(unsafe.Offsetof(mesh.GPUVertex{}.Position)),
							ShaderLocation: 0,
						},
						{
							// color
							Format:         wgpu.VertexFormatFloat32x4,
							Offset:         uint64(unsafe.Offsetof(mesh.GPUVertex{}.Color)),
							ShaderLocation: 1,
						},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    conf.TargetFormat,
					Blend:     &conf.BlendState,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count:                  conf.TargetSampleCount,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	}

	pipeline, err := dev.TryCreateRenderPipeline(desc)
	if err != nil {
		return nil, fmt.Errorf("build mesh pipeline: %w", err)
	}

	return pipeline, nil
}
