package chip

// catalog lists every known AT32 device. Ordered by family; duplicate
// product IDs across packages are expected, first match wins.
var catalog = []Descriptor{
	{0x70050242, 256, 2048, AT32F403A, "CCT7"},
	{0x70050243, 256, 2048, AT32F403A, "CCU7"},
	{0x700502CF, 512, 2048, AT32F403A, "CET7"},
	{0x700502D0, 512, 2048, AT32F403A, "CEU7"},
	{0x70050346, 1024, 2048, AT32F403A, "CGT7"},
	{0x70050347, 1024, 2048, AT32F403A, "CGU7"},
	{0x70050241, 256, 2048, AT32F403A, "RCT7"},
	{0x700502CE, 512, 2048, AT32F403A, "RET7"},
	{0x70050345, 1024, 2048, AT32F403A, "RGT7"},
	{0x70050240, 256, 2048, AT32F403A, "VCT7"},
	{0x700502CD, 512, 2048, AT32F403A, "VET7"},
	{0x70050344, 1024, 2048, AT32F403A, "VGT7"},
	{0xF0050355, 1024, 2048, AT32F403A, "VGW"},
	{0x700301CF, 128, 1024, AT32F403, "CBT6"},
	{0x70050243, 256, 2048, AT32F403, "CCT6"},
	{0x7005024E, 256, 2048, AT32F403, "CCU6"},
	{0x700502CB, 512, 2048, AT32F403, "CET6"},
	{0x700502CD, 512, 2048, AT32F403, "CEU6"},
	{0x70050347, 1024, 2048, AT32F403, "CGT6"},
	{0x7005034C, 1024, 2048, AT32F403, "CGU6"},
	{0x70050242, 256, 2048, AT32F403, "RCT6"},
	{0x700502CA, 512, 2048, AT32F403, "RET6"},
	{0x70050346, 1024, 2048, AT32F403, "RGT6"},
	{0x70050241, 256, 2048, AT32F403, "VCT6"},
	{0x700502C9, 512, 2048, AT32F403, "VET6"},
	{0x70050345, 1024, 2048, AT32F403, "VGT6"},
	{0x70050240, 256, 2048, AT32F403, "ZCT6"},
	{0x700502C8, 512, 2048, AT32F403, "ZET6"},
	{0x70050344, 1024, 2048, AT32F403, "ZGT6"},
	{0x70050254, 256, 2048, AT32F407, "AVCT7"},
	{0x70050353, 1024, 2048, AT32F407, "AVGT7"},
	{0x7005024A, 256, 2048, AT32F407, "RCT7"},
	{0x700502D2, 512, 2048, AT32F407, "RET7"},
	{0x7005034C, 1024, 2048, AT32F407, "RGT7"},
	{0x70050249, 256, 2048, AT32F407, "VCT7"},
	{0x700502D1, 512, 2048, AT32F407, "VET7"},
	{0x7005034B, 1024, 2048, AT32F407, "VGT7"},
	{0x70030106, 64, 1024, AT32F413, "C8T7"},
	{0x700301C3, 128, 1024, AT32F413, "CBT7"},
	{0x700301CA, 128, 1024, AT32F413, "CBU7"},
	{0x70030242, 256, 2048, AT32F413, "CCT7"},
	{0x70030247, 256, 2048, AT32F413, "CCU7"},
	{0x700301C5, 128, 1024, AT32F413, "KBU7-4"},
	{0x70030244, 256, 2048, AT32F413, "KCU7-4"},
	{0x700301C1, 128, 1024, AT32F413, "RBT7"},
	{0x70030240, 256, 2048, AT32F413, "RCT7"},
	{0x700301CB, 128, 1024, AT32F413, "TBU7"},
	{0x70030109, 64, 1024, AT32F415, "C8T7"},
	{0x700301C5, 128, 1024, AT32F415, "CBT7"},
	{0x700301CD, 128, 1024, AT32F415, "CBU7"},
	{0x70030241, 256, 2048, AT32F415, "CCT7"},
	{0x7003024C, 256, 2048, AT32F415, "CCU7"},
	{0x7003010A, 64, 1024, AT32F415, "K8U7-4"},
	{0x700301C6, 128, 1024, AT32F415, "KBU7-4"},
	{0x70030242, 256, 2048, AT32F415, "KCU7-4"},
	{0x7003010B, 64, 1024, AT32F415, "R8T7-7"},
	{0x70030108, 64, 1024, AT32F415, "R8T7"},
	{0x700301C7, 128, 1024, AT32F415, "RBT7-7"},
	{0x700301C4, 128, 1024, AT32F415, "RBT7"},
	{0x700301CF, 128, 1024, AT32F415, "RBW"},
	{0x70030243, 256, 2048, AT32F415, "RCT7-7"},
	{0x70030240, 256, 2048, AT32F415, "RCT7"},
	{0x7003024E, 256, 2048, AT32F415, "RCW"},
	{0x5001000C, 16, 1024, AT32F421, "C4T7"},
	{0x50020086, 32, 1024, AT32F421, "C6T7"},
	{0x50020100, 64, 1024, AT32F421, "C8T7"},
	{0xD0020100, 64, 1024, AT32F421, "C8W-YY"},
	{0x50020117, 64, 1024, AT32F421, "C8W"},
	{0x50010011, 16, 1024, AT32F421, "F4P7"},
	{0x50010010, 16, 1024, AT32F421, "F4U7"},
	{0x5002008B, 32, 1024, AT32F421, "F6P7"},
	{0x5002008A, 32, 1024, AT32F421, "F6U7"},
	{0x50020105, 64, 1024, AT32F421, "F8P7"},
	{0x50020104, 64, 1024, AT32F421, "F8U7"},
	{0x50010014, 16, 1024, AT32F421, "G4U7"},
	{0x50020093, 32, 1024, AT32F421, "G6U7"},
	{0x50020112, 64, 1024, AT32F421, "G8U7"},
	{0x5001000D, 16, 1024, AT32F421, "K4T7"},
	{0x5001000F, 16, 1024, AT32F421, "K4U7-4"},
	{0x5001000E, 16, 1024, AT32F421, "K4U7"},
	{0x50020087, 32, 1024, AT32F421, "K6T7"},
	{0x50020089, 32, 1024, AT32F421, "K6U7-4"},
	{0x50020088, 32, 1024, AT32F421, "K6U7"},
	{0x50020101, 64, 1024, AT32F421, "K8T7"},
	{0x50020103, 64, 1024, AT32F421, "K8U7-4"},
	{0x50020102, 64, 1024, AT32F421, "K8U7"},
	{0x50010016, 16, 1024, AT32F421, "PF4P7"},
	{0x50020115, 64, 1024, AT32F421, "PF8P7"},
	{0x7003210B, 64, 1024, AT32F423, "C8T7"},
	{0x7003210E, 64, 1024, AT32F423, "C8U7"},
	{0x700A21CA, 128, 1024, AT32F423, "CBT7"},
	{0x700A21CD, 128, 1024, AT32F423, "CBU7"},
	{0x700A3249, 256, 2048, AT32F423, "CCT7"},
	{0x700A324C, 256, 2048, AT32F423, "CCU7"},
	{0x70032115, 64, 1024, AT32F423, "K8U7-4"},
	{0x700A21D4, 128, 1024, AT32F423, "KBU7-4"},
	{0x700A3253, 256, 2048, AT32F423, "KCU7-4"},
	{0x70032108, 64, 1024, AT32F423, "R8T7-7"},
	{0x70032105, 64, 1024, AT32F423, "R8T7"},
	{0x700A21C7, 128, 1024, AT32F423, "RBT7-7"},
	{0x700A21C4, 128, 1024, AT32F423, "RBT7"},
	{0x700A3246, 256, 2048, AT32F423, "RCT7-7"},
	{0x700A3243, 256, 2048, AT32F423, "RCT7"},
	{0x70032112, 64, 1024, AT32F423, "T8U7"},
	{0x700A21D1, 128, 1024, AT32F423, "TBU7"},
	{0x700A3250, 256, 2048, AT32F423, "TCU7"},
	{0x70032102, 64, 1024, AT32F423, "V8T7"},
	{0x700A21C1, 128, 1024, AT32F423, "VBT7"},
	{0x700A3240, 256, 2048, AT32F423, "VCT7"},
	{0x50092087, 32, 1024, AT32F425, "C6T7"},
	{0x5009208A, 32, 1024, AT32F425, "C6U7"},
	{0x50092106, 64, 1024, AT32F425, "C8T7"},
	{0x50092109, 64, 1024, AT32F425, "C8U7"},
	{0x50092093, 32, 1024, AT32F425, "F6P7"},
	{0x50092112, 64, 1024, AT32F425, "F8P7"},
	{0x50092096, 32, 1024, AT32F425, "G6U7"},
	{0x50092115, 64, 1024, AT32F425, "G8U7"},
	{0x5009208D, 32, 1024, AT32F425, "K6T7"},
	{0x50092090, 32, 1024, AT32F425, "K6U7-4"},
	{0x5009210C, 64, 1024, AT32F425, "K8T7"},
	{0x5009210F, 64, 1024, AT32F425, "K8U7-4"},
	{0x50092084, 32, 1024, AT32F425, "R6T7-7"},
	{0x50092081, 32, 1024, AT32F425, "R6T7"},
	{0x50092103, 64, 1024, AT32F425, "R8T7-7"},
	{0x50092100, 64, 1024, AT32F425, "R8T7"},
	{0x7008449A, 192, 4096, AT32F435, "CCT7-W"},
	{0x7008324B, 256, 2048, AT32F435, "CCT7"},
	{0x7008449D, 192, 4096, AT32F435, "CCU7-W"},
	{0x7008324E, 256, 2048, AT32F435, "CCU7"},
	{0x700844D9, 960, 4096, AT32F435, "CGT7-W"},
	{0x7008334A, 1024, 2048, AT32F435, "CGT7"},
	{0x700844DC, 960, 4096, AT32F435, "CGU7-W"},
	{0x7008334D, 1024, 2048, AT32F435, "CGU7"},
	{0x70084558, 4032, 4096, AT32F435, "CMT7-E"},
	{0x70084549, 4032, 4096, AT32F435, "CMT7"},
	{0x7008455B, 4032, 4096, AT32F435, "CMU7-E"},
	{0x7008454C, 4032, 4096, AT32F435, "CMU7"},
	{0x70083248, 256, 2048, AT32F435, "RCT7"},
	{0x70083347, 1024, 2048, AT32F435, "RGT7"},
	{0x70084546, 4032, 4096, AT32F435, "RMT7"},
	{0x70083245, 256, 2048, AT32F435, "VCT7"},
	{0x70083344, 1024, 2048, AT32F435, "VGT7"},
	{0x70084543, 4032, 4096, AT32F435, "VMT7"},
	{0x70083242, 256, 2048, AT32F435, "ZCT7"},
	{0x70083341, 1024, 2048, AT32F435, "ZGT7"},
	{0x70084540, 4032, 4096, AT32F435, "ZMT7"},
	{0x70083257, 256, 2048, AT32F437, "RCT7"},
	{0x70083356, 1024, 2048, AT32F437, "RGT7"},
	{0x70084555, 4032, 4096, AT32F437, "RMT7"},
	{0x70083254, 256, 2048, AT32F437, "VCT7"},
	{0x70083353, 1024, 2048, AT32F437, "VGT7"},
	{0x70084552, 4032, 4096, AT32F437, "VMT7"},
	{0x70083251, 256, 2048, AT32F437, "ZCT7"},
	{0x70083350, 1024, 2048, AT32F437, "ZGT7"},
	{0x7008454F, 4032, 4096, AT32F437, "ZMT7"},
	{0x10012006, 16, 1024, AT32L021, "C4T7"},
	{0x1001208D, 32, 1024, AT32L021, "C6T7"},
	{0x10012114, 64, 1024, AT32L021, "C8T7"},
	{0x10012001, 16, 1024, AT32L021, "F4P7"},
	{0x10012002, 16, 1024, AT32L021, "F4U7"},
	{0x10012088, 32, 1024, AT32L021, "F6P7"},
	{0x10012089, 32, 1024, AT32L021, "F6U7"},
	{0x1001210F, 64, 1024, AT32L021, "F8P7"},
	{0x10012110, 64, 1024, AT32L021, "F8U7"},
	{0x10012000, 16, 1024, AT32L021, "G4U7"},
	{0x10012087, 32, 1024, AT32L021, "G6U7"},
	{0x1001210E, 64, 1024, AT32L021, "G8U7"},
	{0x10012005, 16, 1024, AT32L021, "K4T7"},
	{0x10012003, 16, 1024, AT32L021, "K4U7-4"},
	{0x10012004, 16, 1024, AT32L021, "K4U7"},
	{0x1001208C, 32, 1024, AT32L021, "K6T7"},
	{0x1001208A, 32, 1024, AT32L021, "K6U7-4"},
	{0x1001208B, 32, 1024, AT32L021, "K6U7"},
	{0x10012113, 64, 1024, AT32L021, "K8T7"},
	{0x10012111, 64, 1024, AT32L021, "K8U7-4"},
	{0x10012112, 64, 1024, AT32L021, "K8U7"},
	{0x70030250, 256, 2048, AT32WB415, "CCU7-7"},
}
