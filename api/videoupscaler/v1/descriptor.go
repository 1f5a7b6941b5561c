package videoupscalerv1

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"sync"

	_ "cosmossdk.io/api/cosmos/base/v1beta1" // registers cosmos/base/v1beta1/coin.proto
	msgv1 "cosmossdk.io/api/cosmos/msg/v1"
	protov2 "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

const (
	typesFile = "janction/videoUpscaler/v1/types.proto"
	queryFile = "janction/videoUpscaler/v1/query.proto"
	txFile    = "janction/videoUpscaler/v1/tx.proto"

	coinFile = "cosmos/base/v1beta1/coin.proto"
	msgFile  = "cosmos/msg/v1/msg.proto"

	coinType = ".cosmos.base.v1beta1.Coin"
)

var (
	registerFilesOnce sync.Once
	registerFilesErr  error
)

// RegisterFiles registers the module's file descriptors in the protobuf-go
// global registry. The x/tx signing context resolves Msg signers from the
// cosmos.msg.v1.signer options found there. Safe to call repeatedly.
func RegisterFiles() error {
	registerFilesOnce.Do(func() {
		for _, fdp := range fileDescriptors() {
			if _, err := protoregistry.GlobalFiles.FindFileByPath(fdp.GetName()); err == nil {
				continue
			}
			fd, err := protodesc.NewFile(fdp, protoregistry.GlobalFiles)
			if err != nil {
				registerFilesErr = fmt.Errorf("build %s: %w", fdp.GetName(), err)
				return
			}
			if err := protoregistry.GlobalFiles.RegisterFile(fd); err != nil {
				registerFilesErr = fmt.Errorf("register %s: %w", fdp.GetName(), err)
				return
			}
		}
	})
	return registerFilesErr
}

var (
	gzippedOnce sync.Once
	gzipped     map[string][]byte
)

// gzippedDescriptor returns the gzipped FileDescriptorProto of the named
// file, the form gogoproto messages hand out from Descriptor().
func gzippedDescriptor(name string) []byte {
	gzippedOnce.Do(func() {
		gzipped = make(map[string][]byte)
		for _, fdp := range fileDescriptors() {
			raw, err := protov2.Marshal(fdp)
			if err != nil {
				panic(fmt.Sprintf("marshal %s: %v", fdp.GetName(), err))
			}
			var buf bytes.Buffer
			zw, _ := gzip.NewWriterLevel(&buf, gzip.BestCompression)
			if _, err := zw.Write(raw); err != nil {
				panic(fmt.Sprintf("gzip %s: %v", fdp.GetName(), err))
			}
			if err := zw.Close(); err != nil {
				panic(fmt.Sprintf("gzip %s: %v", fdp.GetName(), err))
			}
			gzipped[fdp.GetName()] = buf.Bytes()
		}
	})
	return gzipped[name]
}

// fileDescriptors returns types, query and tx in dependency order.
func fileDescriptors() []*descriptorpb.FileDescriptorProto {
	return []*descriptorpb.FileDescriptorProto{
		protoFile(typesFile, []string{coinFile}, []*descriptorpb.DescriptorProto{
			message("VideoUpscalerTask",
				str("taskId", 1), str("requester", 2), str("cid", 3),
				i64("startFrame", 4), i64("endFrame", 5), i64("threadAmount", 6),
				boolean("completed", 7), msg("reward", 8, coinType),
				repeated(msg("threads", 9, local("VideoUpscalerThread"))),
			),
			withNested(
				message("VideoUpscalerThread",
					str("threadId", 1), str("taskId", 2),
					i64("startFrame", 3), i64("endFrame", 4), boolean("completed", 5),
					repeated(str("workers", 6)),
					msg("solution", 7, local("VideoUpscalerThread.Solution")),
					repeated(msg("validations", 8, local("VideoUpscalerThread.Validation"))),
					i64("average_render_seconds", 9),
				),
				message("Frame",
					str("filename", 1), str("signature", 2), str("cid", 3), str("hash", 4),
					i64("validCount", 5), i64("invalidCount", 6),
				),
				message("Solution",
					str("proposedBy", 1),
					repeated(msg("frames", 2, local("VideoUpscalerThread.Frame"))),
					str("public_key", 3), str("dir", 4), boolean("accepted", 5),
				),
				message("Validation",
					str("validator", 1),
					repeated(msg("frames", 2, local("VideoUpscalerThread.Frame"))),
					str("public_key", 3), boolean("isReverse", 4),
				),
			),
			withNested(
				message("Worker",
					str("address", 1), msg("reputation", 2, local("Worker.Reputation")),
					boolean("enabled", 3), str("public_ip", 4), str("ipfs_id", 5),
					str("currentTaskId", 6), i32("currentThreadIndex", 7),
				),
				message("Reputation",
					i64("points", 1), msg("staked", 2, coinType),
					i64("validations", 3), i64("solutions", 4),
					msg("winnings", 5, coinType), repeated(i64("render_durations", 6)),
				),
			),
			message("VideoUpscalerLogs",
				str("threadId", 1),
				repeated(msg("logs", 2, local("VideoUpscalerLog"))),
			),
			withEnum(
				message("VideoUpscalerLog",
					str("log", 1), i64("timestamp", 2),
					enum("severity", 3, local("VideoUpscalerLog.Severity")),
				),
				"Severity", "INFO", "SUCCESS", "ERROR",
			),
		}, nil),
		protoFile(queryFile, []string{typesFile}, []*descriptorpb.DescriptorProto{
			message("QueryGetVideoUpscalerTaskRequest", str("index", 1)),
			message("QueryGetVideoUpscalerTaskResponse", msg("videoUpscalerTask", 1, local("VideoUpscalerTask"))),
			message("QueryGetVideoUpscalerLogsRequest", str("threadId", 1)),
			message("QueryGetVideoUpscalerLogsResponse", msg("videoUpscalerLogs", 1, local("VideoUpscalerLogs"))),
			message("QueryGetPendingVideoUpscalerTaskRequest"),
			message("QueryGetPendingVideoUpscalerTaskResponse", repeated(msg("videoUpscalerTasks", 1, local("VideoUpscalerTask")))),
			message("QueryGetWorkerRequest", str("worker", 1)),
			message("QueryGetWorkerResponse", msg("worker", 1, local("Worker"))),
		}, []*descriptorpb.ServiceDescriptorProto{
			service("Query", false,
				"GetVideoUpscalerTask", "QueryGetVideoUpscalerTaskRequest", "QueryGetVideoUpscalerTaskResponse",
				"GetVideoUpscalerLogs", "QueryGetVideoUpscalerLogsRequest", "QueryGetVideoUpscalerLogsResponse",
				"GetPendingVideoUpscalerTasks", "QueryGetPendingVideoUpscalerTaskRequest", "QueryGetPendingVideoUpscalerTaskResponse",
				"GetWorker", "QueryGetWorkerRequest", "QueryGetWorkerResponse",
			),
		}),
		protoFile(txFile, []string{coinFile, msgFile}, []*descriptorpb.DescriptorProto{
			signedBy("creator", message("MsgCreateVideoUpscalerTask",
				str("creator", 1), str("cid", 2), i64("startFrame", 3), i64("endFrame", 4),
				i64("threads", 5), msg("reward", 6, coinType),
			)),
			message("MsgCreateVideoUpscalerTaskResponse", str("taskId", 1)),
			signedBy("creator", message("MsgAddWorker",
				str("creator", 1), str("public_ip", 2), str("ipfs_id", 3), msg("stake", 4, coinType),
			)),
			message("MsgAddWorkerResponse", boolean("ok", 1), str("message", 2)),
			signedBy("address", message("MsgSubscribeWorkerToTask",
				str("address", 1), str("taskId", 2), str("threadId", 3),
			)),
			message("MsgSubscribeWorkerToTaskResponse", str("threadId", 1)),
			signedBy("creator", message("MsgProposeSolution",
				str("creator", 1), str("taskId", 2), str("threadId", 3), str("public_key", 4),
				repeated(str("signatures", 5)),
			)),
			message("MsgProposeSolutionResponse"),
			signedBy("creator", message("MsgRevealSolution",
				str("creator", 1), str("taskId", 2), str("threadId", 3), repeated(str("frames", 4)),
			)),
			message("MsgRevealSolutionResponse"),
			signedBy("creator", message("MsgSubmitValidation",
				str("creator", 1), str("taskId", 2), str("threadId", 3), str("public_key", 4),
				repeated(str("signatures", 5)),
			)),
			message("MsgSubmitValidationResponse"),
			signedBy("creator", message("MsgSubmitSolution",
				str("creator", 1), str("taskId", 2), str("threadId", 3), str("dir", 4),
				i64("average_render_seconds", 5),
			)),
			message("MsgSubmitSolutionResponse"),
		}, []*descriptorpb.ServiceDescriptorProto{
			service("Msg", true,
				"CreateVideoUpscalerTask", "MsgCreateVideoUpscalerTask", "MsgCreateVideoUpscalerTaskResponse",
				"AddWorker", "MsgAddWorker", "MsgAddWorkerResponse",
				"SubscribeWorkerToTask", "MsgSubscribeWorkerToTask", "MsgSubscribeWorkerToTaskResponse",
				"ProposeSolution", "MsgProposeSolution", "MsgProposeSolutionResponse",
				"RevealSolution", "MsgRevealSolution", "MsgRevealSolutionResponse",
				"SubmitValidation", "MsgSubmitValidation", "MsgSubmitValidationResponse",
				"SubmitSolution", "MsgSubmitSolution", "MsgSubmitSolutionResponse",
			),
		}),
	}
}

func protoFile(name string, deps []string, msgs []*descriptorpb.DescriptorProto, svcs []*descriptorpb.ServiceDescriptorProto) *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:        protov2.String(name),
		Package:     protov2.String(protoPackage),
		Dependency:  deps,
		MessageType: msgs,
		Service:     svcs,
		Syntax:      protov2.String("proto3"),
		Options: &descriptorpb.FileOptions{
			GoPackage: protov2.String("github.com/janction/sdk-go/api/videoupscaler/v1;videoupscalerv1"),
		},
	}
}

func local(name string) string {
	return "." + protoPackage + "." + name
}

func message(name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{Name: protov2.String(name), Field: fields}
}

func withNested(parent *descriptorpb.DescriptorProto, nested ...*descriptorpb.DescriptorProto) *descriptorpb.DescriptorProto {
	parent.NestedType = append(parent.NestedType, nested...)
	return parent
}

// withEnum nests an enum whose values are numbered from zero in order.
func withEnum(parent *descriptorpb.DescriptorProto, name string, values ...string) *descriptorpb.DescriptorProto {
	enum := &descriptorpb.EnumDescriptorProto{Name: protov2.String(name)}
	for i, v := range values {
		enum.Value = append(enum.Value, &descriptorpb.EnumValueDescriptorProto{
			Name:   protov2.String(v),
			Number: protov2.Int32(int32(i)),
		})
	}
	parent.EnumType = append(parent.EnumType, enum)
	return parent
}

func signedBy(field string, m *descriptorpb.DescriptorProto) *descriptorpb.DescriptorProto {
	opts := &descriptorpb.MessageOptions{}
	protov2.SetExtension(opts, msgv1.E_Signer, []string{field})
	m.Options = opts
	return m
}

// service takes method triples of name, input and output message.
func service(name string, isMsg bool, methods ...string) *descriptorpb.ServiceDescriptorProto {
	svc := &descriptorpb.ServiceDescriptorProto{Name: protov2.String(name)}
	for i := 0; i+2 < len(methods); i += 3 {
		svc.Method = append(svc.Method, &descriptorpb.MethodDescriptorProto{
			Name:       protov2.String(methods[i]),
			InputType:  protov2.String(local(methods[i+1])),
			OutputType: protov2.String(local(methods[i+2])),
		})
	}
	if isMsg {
		opts := &descriptorpb.ServiceOptions{}
		protov2.SetExtension(opts, msgv1.E_Service, true)
		svc.Options = opts
	}
	return svc
}

func field(name string, number int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   protov2.String(name),
		Number: protov2.Int32(number),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   typ.Enum(),
	}
}

func str(name string, number int32) *descriptorpb.FieldDescriptorProto {
	return field(name, number, descriptorpb.FieldDescriptorProto_TYPE_STRING)
}

func i64(name string, number int32) *descriptorpb.FieldDescriptorProto {
	return field(name, number, descriptorpb.FieldDescriptorProto_TYPE_INT64)
}

func i32(name string, number int32) *descriptorpb.FieldDescriptorProto {
	return field(name, number, descriptorpb.FieldDescriptorProto_TYPE_INT32)
}

func boolean(name string, number int32) *descriptorpb.FieldDescriptorProto {
	return field(name, number, descriptorpb.FieldDescriptorProto_TYPE_BOOL)
}

func msg(name string, number int32, typeName string) *descriptorpb.FieldDescriptorProto {
	f := field(name, number, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE)
	f.TypeName = protov2.String(typeName)
	return f
}

func enum(name string, number int32, typeName string) *descriptorpb.FieldDescriptorProto {
	f := field(name, number, descriptorpb.FieldDescriptorProto_TYPE_ENUM)
	f.TypeName = protov2.String(typeName)
	return f
}

func repeated(f *descriptorpb.FieldDescriptorProto) *descriptorpb.FieldDescriptorProto {
	f.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	return f
}
