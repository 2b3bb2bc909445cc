// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-pass-vault/models"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "vault.v1.Vault"

// Full method names, used by the auth interceptor and by clients calling
// [grpc.ClientConn.Invoke].
const (
	MethodStatus           = "/" + ServiceName + "/Status"
	MethodSetMasterKey     = "/" + ServiceName + "/SetMasterKey"
	MethodOpenSession      = "/" + ServiceName + "/OpenSession"
	MethodCloseSession     = "/" + ServiceName + "/CloseSession"
	MethodListSecrets      = "/" + ServiceName + "/ListSecrets"
	MethodCreateSecret     = "/" + ServiceName + "/CreateSecret"
	MethodReadSecret       = "/" + ServiceName + "/ReadSecret"
	MethodDeleteSecret     = "/" + ServiceName + "/DeleteSecret"
	MethodGeneratePassword = "/" + ServiceName + "/GeneratePassword"
)

// VaultServer is the server API of the vault.v1.Vault service.
type VaultServer interface {
	Status(context.Context, *Empty) (*models.VaultStatus, error)
	SetMasterKey(context.Context, *models.MasterKeyRequest) (*Empty, error)
	OpenSession(context.Context, *models.MasterKeyRequest) (*models.SessionToken, error)
	CloseSession(context.Context, *Empty) (*Empty, error)
	ListSecrets(context.Context, *Empty) (*models.SecretNamesResponse, error)
	CreateSecret(context.Context, *models.CreateSecretRequest) (*models.Secret, error)
	ReadSecret(context.Context, *NameRequest) (*models.Secret, error)
	DeleteSecret(context.Context, *NameRequest) (*models.DeleteSecretResponse, error)
	GeneratePassword(context.Context, *Empty) (*models.GeneratedPasswordResponse, error)
}

// RegisterVaultServer registers srv on s.
func RegisterVaultServer(s grpc.ServiceRegistrar, srv VaultServer) {
	s.RegisterService(&vaultServiceDesc, srv)
}

// unaryHandler adapts a typed method to [grpc.MethodHandler].
func unaryHandler[Req any, Resp any](fullMethod string, call func(VaultServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(VaultServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(VaultServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var vaultServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*VaultServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Status", Handler: unaryHandler(MethodStatus, VaultServer.Status)},
		{MethodName: "SetMasterKey", Handler: unaryHandler(MethodSetMasterKey, VaultServer.SetMasterKey)},
		{MethodName: "OpenSession", Handler: unaryHandler(MethodOpenSession, VaultServer.OpenSession)},
		{MethodName: "CloseSession", Handler: unaryHandler(MethodCloseSession, VaultServer.CloseSession)},
		{MethodName: "ListSecrets", Handler: unaryHandler(MethodListSecrets, VaultServer.ListSecrets)},
		{MethodName: "CreateSecret", Handler: unaryHandler(MethodCreateSecret, VaultServer.CreateSecret)},
		{MethodName: "ReadSecret", Handler: unaryHandler(MethodReadSecret, VaultServer.ReadSecret)},
		{MethodName: "DeleteSecret", Handler: unaryHandler(MethodDeleteSecret, VaultServer.DeleteSecret)},
		{MethodName: "GeneratePassword", Handler: unaryHandler(MethodGeneratePassword, VaultServer.GeneratePassword)},
	},
	Streams:  []grpc.StreamDesc{},
}
